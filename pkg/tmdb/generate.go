package tmdb

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_tmdb.go github.com/kasuboski/serialz/pkg/tmdb ITmdb
