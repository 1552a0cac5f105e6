package health

// Service encapsulates health-related checks.
type Service struct {
	name    string
	version string
}

// NewService constructs a new health service.
func NewService(name, version string) *Service {
	return &Service{name: name, version: version}
}

// Root returns the service banner served at "/".
func (s *Service) Root() map[string]string {
	return map[string]string{
		"status":  "ok",
		"service": s.name,
		"version": s.version,
	}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{"ok": true, "version": s.version}
}
