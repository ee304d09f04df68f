package entity

type Project struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Assumptions string `yaml:"assumptions"`
	Notes       string `yaml:"notes"`
}
