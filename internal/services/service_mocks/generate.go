// Package service_mocks contains generated mocks for the service
// interfaces. Regenerate with `go generate ./...` after changing the
// interfaces.
package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks
