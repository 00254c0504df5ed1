package events

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) InvalidateCatalog(ctx context.Context) {
	m.Called(ctx)
}

func newTestSubscriber(invalidator CatalogInvalidator) *CatalogEventSubscriber {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &CatalogEventSubscriber{invalidator: invalidator, logger: logger}
}

func TestHandleEvent_Invalidates(t *testing.T) {
	invalidator := new(MockInvalidator)
	invalidator.On("InvalidateCatalog", mock.Anything).Return()
	s := newTestSubscriber(invalidator)

	err := s.handleEvent(context.Background(), "product.updated", []byte(`{"eventType":"product.updated","productId":"p1","timestamp":"2024-01-01T00:00:00Z"}`))
	assert.NoError(t, err)

	err = s.handleEvent(context.Background(), "category.deleted", []byte(`{"eventType":"category.deleted","categoryId":"c1"}`))
	assert.NoError(t, err)

	invalidator.AssertNumberOfCalls(t, "InvalidateCatalog", 2)
}

func TestHandleEvent_MalformedPayload(t *testing.T) {
	invalidator := new(MockInvalidator)
	s := newTestSubscriber(invalidator)

	err := s.handleEvent(context.Background(), "product.updated", []byte(`not json`))
	assert.Error(t, err)
	invalidator.AssertNotCalled(t, "InvalidateCatalog", mock.Anything)
}

func TestCatalogStreams(t *testing.T) {
	subjects := map[string]string{}
	for _, cs := range catalogStreams {
		subjects[cs.stream] = cs.subject
	}
	assert.Equal(t, "product.>", subjects["PRODUCT_EVENTS"])
	assert.Equal(t, "category.>", subjects["CATEGORY_EVENTS"])
}
