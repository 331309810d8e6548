package repository

// Factory describes access to the domain repositories.
type Factory interface {
	Workspaces() WorkspaceRepository
	Handoffs() HandoffRepository
}
