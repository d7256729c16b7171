package requests

type ListUsers struct {
	Pagination
	Role   string
	Search string
}
