package models

// ExternalSystem is a registered API client as listed by the service.
// Listings never carry the access key.
type ExternalSystem struct {
	Name string
}

// Registration is returned once, by the call that registers a system.
// The access key cannot be fetched again afterwards.
type Registration struct {
	Name      string
	AccessKey string
}
