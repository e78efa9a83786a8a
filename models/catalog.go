package models

// Person is a Star Wars character from the people catalog.
type Person struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	IsActive bool   `json:"is_active"`
}

// TableName returns the name of the database table for Person.
func (Person) TableName() string {
	return "people"
}

// Planet is an entry of the planets catalog. Name is unique.
type Planet struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Population int64  `json:"population"`
	IsActive   bool   `json:"is_active"`
}

// TableName returns the name of the database table for Planet.
func (Planet) TableName() string {
	return "planets"
}

// Vehicle is an entry of the vehicles catalog.
type Vehicle struct {
	ID       int64  `json:"id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	IsActive bool   `json:"is_active"`
}

// TableName returns the name of the database table for Vehicle.
func (Vehicle) TableName() string {
	return "vehicles"
}
