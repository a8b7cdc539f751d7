package config

type SecurityLevel int

const (
	SecurityPublic    SecurityLevel = iota // No sign-in
	SecurityRequester                      // Requester session required
	SecurityHospital                       // Hospital session required
)

func (l SecurityLevel) String() string {
	switch l {
	case SecurityPublic:
		return "public"
	case SecurityRequester:
		return "requester"
	case SecurityHospital:
		return "hospital"
	}
	return "unknown"
}

// EndpointSecurityConfig maps "METHOD /route-template" to its required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Pages - Public
	"GET /":                 SecurityPublic,
	"GET /signin":           SecurityPublic,
	"GET /signup":           SecurityPublic,
	"GET /hospital":         SecurityPublic,
	"GET /hospitals/signin": SecurityPublic,
	"GET /hospitals/signup": SecurityPublic,

	// Identity - Public
	"POST /login":            SecurityPublic,
	"POST /signup":           SecurityPublic,
	"POST /hospitals/signin": SecurityPublic,
	"POST /hospitals/signup": SecurityPublic,
	"GET /signout":           SecurityPublic,

	// Donor registry - Public
	"POST /donate": SecurityPublic,

	// Operations - Public
	"GET /health":       SecurityPublic,
	"GET /health/ready": SecurityPublic,
	"GET /metrics":      SecurityPublic,

	// Request workflow - Requester
	"POST /request": SecurityRequester,
	"GET /success":  SecurityRequester,

	// Request workflow - Hospital
	"GET /hospitals/dashboard":        SecurityHospital,
	"GET /hospitals/dashboard/export": SecurityHospital,
	"POST /approve":                   SecurityHospital,
	"POST /reject":                    SecurityHospital,
}

// GetSecurityLevel returns the security level for a method and route template
func GetSecurityLevel(method, route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method+" "+route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityHospital
}
