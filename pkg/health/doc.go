// Package health provides HTTP handlers for liveness and readiness probes.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"templates": renderCheck,
//	}, health.WithTimeout(time.Second)))
//
// Checks run in parallel under a shared timeout. Responses are plain text
// ("OK" or "Service Unavailable") unless the client sends
// Accept: application/json or ?format=json:
//
//	{"status":"unhealthy","checks":{"templates":{"status":"unhealthy","error":"..."}}}
package health
