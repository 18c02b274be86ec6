package httpapi

import (
	"encoding/json"
	"fmt"

	"github.com/adupuis1/CouchSuite/internal/domain"
)

// The service has served both a bare array and a {data: [...]} wrapper for
// catalog payloads; both shapes are accepted.
type entryPayload struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MoonlightName string `json:"moonlight_name"`
	Enabled       *bool  `json:"enabled"`
	SortOrder     *int   `json:"sort_order"`
	Installed     bool   `json:"installed"`
	Owned         bool   `json:"owned"`
	ChartRank     *int   `json:"chart_rank"`
	ChartDate     string `json:"chart_date"`
	Description   string `json:"description"`
	CoverURL      string `json:"cover_url"`
	SteamAppID    int    `json:"steam_appid"`
	GameID        int    `json:"game_id"`
}

func parseEntries(payload []byte) ([]domain.Entry, error) {
	var raw []entryPayload
	if err := json.Unmarshal(payload, &raw); err != nil {
		var wrapper struct {
			Data []entryPayload `json:"data"`
		}
		if err := json.Unmarshal(payload, &wrapper); err != nil || wrapper.Data == nil {
			return nil, fmt.Errorf("unsupported catalog payload format")
		}
		raw = wrapper.Data
	}

	entries := make([]domain.Entry, 0, len(raw))
	for _, item := range raw {
		entry, err := toEntry(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toEntry(item entryPayload) (domain.Entry, error) {
	if item.ID == "" {
		return domain.Entry{}, fmt.Errorf("catalog entry missing id")
	}

	name := item.Name
	if name == "" {
		name = item.ID
	}
	target := item.MoonlightName
	if target == "" {
		target = name
	}

	enabled := true
	if item.Enabled != nil {
		enabled = *item.Enabled
	}

	chartRank := 0
	if item.ChartRank != nil {
		chartRank = *item.ChartRank
	}

	sortOrder := 100
	switch {
	case item.SortOrder != nil:
		sortOrder = *item.SortOrder
	case item.ChartRank != nil:
		sortOrder = *item.ChartRank
	}

	return domain.Entry{
		ID:           domain.EntryID(item.ID),
		DisplayName:  name,
		LaunchTarget: target,
		Enabled:      enabled,
		SortOrder:    sortOrder,
		Installed:    item.Installed,
		Owned:        item.Owned,
		GameID:       item.GameID,
		ChartRank:    chartRank,
		ChartDate:    item.ChartDate,
		Description:  item.Description,
		CoverURL:     item.CoverURL,
		SteamAppID:   item.SteamAppID,
	}, nil
}

func parseLibrary(payload []byte) ([]domain.LibraryRecord, error) {
	var raw []struct {
		Game struct {
			ID   int    `json:"id"`
			Slug string `json:"slug"`
		} `json:"game"`
		InstallReady bool `json:"install_ready"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		// A non-array library payload yields an empty library, matching the
		// service's behavior for users with no org membership.
		return nil, nil
	}

	records := make([]domain.LibraryRecord, 0, len(raw))
	for _, item := range raw {
		if item.Game.ID <= 0 {
			continue
		}
		records = append(records, domain.LibraryRecord{
			Slug:         item.Game.Slug,
			GameID:       item.Game.ID,
			InstallReady: item.InstallReady,
		})
	}
	return records, nil
}

func parsePresence(payload []byte) (bool, error) {
	var raw struct {
		HasUsers      *bool `json:"has_users"`
		HasUsersCamel *bool `json:"hasUsers"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return false, fmt.Errorf("decode presence response: %w", err)
	}
	if raw.HasUsers != nil {
		return *raw.HasUsers, nil
	}
	if raw.HasUsersCamel != nil {
		return *raw.HasUsersCamel, nil
	}
	return false, nil
}

func parseProfile(payload []byte) (domain.UserProfile, error) {
	var raw struct {
		UserID      *int            `json:"user_id"`
		UserIDCamel *int            `json:"userId"`
		Username    string          `json:"username"`
		Apps        json.RawMessage `json:"apps"`
		Settings    map[string]any  `json:"settings"`
		Orgs        []struct {
			ID   int    `json:"id"`
			Slug string `json:"slug"`
			Name string `json:"name"`
			Role string `json:"role"`
		} `json:"orgs"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return domain.UserProfile{}, fmt.Errorf("decode profile response: %w", err)
	}

	userID := 0
	switch {
	case raw.UserID != nil:
		userID = *raw.UserID
	case raw.UserIDCamel != nil:
		userID = *raw.UserIDCamel
	}
	if userID <= 0 {
		return domain.UserProfile{}, fmt.Errorf("profile response missing user id")
	}

	var apps []domain.Entry
	if len(raw.Apps) > 0 {
		parsed, err := parseEntries(raw.Apps)
		if err != nil {
			return domain.UserProfile{}, fmt.Errorf("decode profile apps: %w", err)
		}
		apps = parsed
	}

	orgs := make([]domain.OrgSummary, 0, len(raw.Orgs))
	for _, org := range raw.Orgs {
		role := org.Role
		if role == "" {
			role = "member"
		}
		orgs = append(orgs, domain.OrgSummary{ID: org.ID, Slug: org.Slug, Name: org.Name, Role: role})
	}

	return domain.UserProfile{
		UserID:   userID,
		Username: raw.Username,
		Apps:     apps,
		Settings: raw.Settings,
		Orgs:     orgs,
		Token:    raw.Token,
	}, nil
}

func parsePlaySession(payload []byte) (domain.PlaySession, error) {
	var raw struct {
		ID        int     `json:"id"`
		Status    string  `json:"status"`
		StreamURL *string `json:"stream_url"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return domain.PlaySession{}, fmt.Errorf("decode play session response: %w", err)
	}

	status := raw.Status
	if status == "" {
		status = string(domain.PlaySessionProvisioning)
	}
	streamURL := ""
	if raw.StreamURL != nil {
		streamURL = *raw.StreamURL
	}

	return domain.PlaySession{
		ID:        raw.ID,
		Status:    domain.PlaySessionStatus(status),
		StreamURL: streamURL,
	}, nil
}
