package repository

type CreateOptions struct {
	Symbol string
	CmcID  *int
	Name   string
}
