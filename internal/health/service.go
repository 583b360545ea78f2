package health

import "time"

const (
	Banner  = "Resume Editor API is running"
	Version = "1.0.0"
)

// Counter reports how many resumes are currently held.
type Counter interface {
	Count() int
}

// Service encapsulates health-related checks.
type Service struct {
	Counter Counter
	Now     func() time.Time
}

// NewService constructs a new health service.
func NewService(counter Counter) *Service {
	return &Service{Counter: counter, Now: time.Now}
}

// Status is the payload served by GET /health.
type Status struct {
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	TotalResumes int    `json:"total_resumes"`
}

// Status reports liveness plus the current store size.
func (s *Service) Status() Status {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	total := 0
	if s.Counter != nil {
		total = s.Counter.Count()
	}
	ts, _ := now().MarshalText()
	return Status{
		Status:       "healthy",
		Timestamp:    string(ts),
		TotalResumes: total,
	}
}
