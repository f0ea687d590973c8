// Package storagemock holds testify mocks for the storage interfaces.
package storagemock

//go:generate mockery --case underscore --output . --outpkg storagemock --dir .. --name KV
//go:generate mockery --case underscore --output . --outpkg storagemock --dir .. --name Repository
