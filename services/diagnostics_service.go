package services

import (
	"context"

	"perfume-shop/database"
	"perfume-shop/models"
)

const (
	RootMessage          = "Niche Perfume Backend Running"
	maxListedCollections = 10
)

type DiagnosticsService struct {
	store           database.Store
	databaseURLSet  bool
	databaseNameSet bool
}

func NewDiagnosticsService(store database.Store, databaseURL, databaseName string) *DiagnosticsService {
	return &DiagnosticsService{
		store:           store,
		databaseURLSet:  databaseURL != "",
		databaseNameSet: databaseName != "",
	}
}

// Report describes store connectivity. It never fails; problems are reported
// in the response.
func (s *DiagnosticsService) Report(ctx context.Context) models.DiagnosticsResponse {
	resp := models.DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		Driver:           s.store.Name(),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if database.Available(s.store) {
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"

		names, err := s.store.Collections(ctx)
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > maxListedCollections {
				names = names[:maxListedCollections]
			}
			resp.Collections = names
			resp.Database = "✅ Connected & Working"
		}
	}

	resp.DatabaseURL = setOrNot(s.databaseURLSet)
	resp.DatabaseName = setOrNot(s.databaseNameSet)
	return resp
}

func setOrNot(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
