// Package manager integrates with the local model manager that owns
// model downloads and storage.
//
// The catalog tool never touches model files itself; anything below
// "which models exist remotely" is delegated through the Manager
// interface. The concrete implementation speaks the Ollama HTTP API,
// but commands depend only on the interface so tests can substitute a
// fake and future backends can slot in.
package manager
