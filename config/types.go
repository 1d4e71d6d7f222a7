package config

// ClientConfig contains the default server and transport settings
type ClientConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	Timezone  string `yaml:"timezone" validate:"omitempty,timezone"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
	UserAgent string `yaml:"userAgent"`
}

// DeparturesConfig contains departure monitor defaults
type DeparturesConfig struct {
	Limit int `yaml:"limit" validate:"gte=0"`
}

// StopFinderConfig contains stop finder defaults
type StopFinderConfig struct {
	Type string `yaml:"type" validate:"omitempty,oneof=any coord"`
}

// Endpoint is a named EFA server
type Endpoint struct {
	Name    string `yaml:"name" validate:"required"`
	BaseURL string `yaml:"baseURL" validate:"required,url"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Client     ClientConfig     `yaml:"client"`
	Departures DeparturesConfig `yaml:"departures"`
	StopFinder StopFinderConfig `yaml:"stopFinder"`
	Endpoints  []Endpoint       `yaml:"endpoints" validate:"dive"`
}
