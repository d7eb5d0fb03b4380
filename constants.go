package main

// Application constants
const (
	AppName        = "negatris"
	AppTitle       = "Negatris"
	releaseVersion = "1.0.0"
	envPrefix      = "NEGATRIS"
)

// Route constants
const (
	RouteHome    = "/"
	RouteHealthz = "/healthz"
	RouteVersion = "/version"
	RouteQR      = "/qr"
	RouteStatic  = "/static"
)

// Asset constants
const (
	templatesGlob = "templates/*.html"
	staticDir     = "static"
	distDir       = "dist"
	wasmFile      = "negatris.wasm"
	qrSize        = 320
)

// Error message constants
const (
	ErrorTooManyRequests = "Too many requests. Please slow down."
	ErrorQRFailed        = "QR code generation failed."
)

type contextKey string

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
