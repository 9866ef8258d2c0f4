// Package services implements the business logic layer behind the HTTP handlers.
//
// # Pages
//
// Pages loads the two static pages of the server from the statics folder:
//
//	StaticsFolder/
//	├── hello.html   - served by GET / and GET /sleep
//	└── 404.html     - served for every other route
//
// Both files are read once at creation; a missing file is reported by
// NewPagesService so the server refuses to start instead of failing each request.
package services
