package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/listing"
	"storefront-service/internal/models"
)

func newSessionID() string {
	return uuid.New().String()
}

// CreateBrowseSession loads the catalog once and stores the resulting view.
// A failed load still creates a session, in the error state.
func (s *storefrontService) CreateBrowseSession(ctx context.Context, locale models.Locale) (*models.BrowseSession, error) {
	view, _ := s.loadView(ctx, locale)
	id := s.newID()

	if err := s.sessions.Save(ctx, id, view.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to save browse session: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": id,
		"status":     view.Status,
		"products":   len(view.All),
	}).Debug("Browse session created")

	return s.browseSession(id, view), nil
}

func (s *storefrontService) GetBrowseSession(ctx context.Context, sessionID string) (*models.BrowseSession, error) {
	snapshot, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.browseSession(sessionID, snapshot.Restore()), nil
}

// ApplyBrowseAction transitions a stored session by one user action
func (s *storefrontService) ApplyBrowseAction(ctx context.Context, sessionID string, action models.BrowseAction) (*models.BrowseSession, error) {
	transition, err := toListingAction(action)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := snapshot.Restore().Apply(transition)
	if err := s.sessions.Save(ctx, sessionID, view.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to save browse session: %w", err)
	}
	return s.browseSession(sessionID, view), nil
}

func (s *storefrontService) browseSession(id string, view listing.View) *models.BrowseSession {
	data, pagination := s.render(view)
	return &models.BrowseSession{ID: id, Listing: data, Pagination: pagination}
}

func toListingAction(action models.BrowseAction) (listing.Action, error) {
	switch action.Type {
	case "search":
		return listing.SearchChanged{Query: action.Query, Category: action.Category}, nil
	case "sort":
		return listing.SortChanged{Sort: models.ParseSortKey(action.Sort)}, nil
	case "page":
		return listing.PageChanged{Page: action.Page}, nil
	case "locale":
		locale, ok := models.ParseLocale(action.Locale)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported locale %q", ErrInvalidAction, action.Locale)
		}
		return listing.LocaleChanged{Locale: locale}, nil
	}
	return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidAction, action.Type)
}
