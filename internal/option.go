package internal

import "fmt"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// newApplication applies the options and checks required ones are set.
func newApplication(opts []Option) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	return app, nil
}
