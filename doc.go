// Package main provides the entry point for the Marogo Civils website.
// It runs a Fiber web server that renders the public marketing pages and a
// session-gated admin console for managing the site content: projects,
// services, blog posts, testimonials, statistics, team members, client
// logos, certifications and contact submissions. The application uses gorm
// for persistence and stores uploaded images, optimized through a remote
// service, in a flat uploads directory.
package main
