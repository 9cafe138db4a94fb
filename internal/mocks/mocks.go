// Package mocks holds testify mocks of the service and storage interfaces.
package mocks

import "github.com/stretchr/testify/mock"

type mockTestingT interface {
	mock.TestingT
	Cleanup(func())
}
