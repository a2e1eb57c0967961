package handlers

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BennetC/Social-Tracker/internal/data/repos/testutil"
	"github.com/BennetC/Social-Tracker/internal/services"
)

func formContext(t *testing.T, values url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("POST", "/relationships", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestBindRelationshipFormFieldNames(t *testing.T) {
	c := formContext(t, url.Values{
		"name":                    {"Alice"},
		"goal":                    {"Collaborate on tooling"},
		"execution_strategy":      {"Monthly check-ins"},
		"notes":                   {"Met at a meetup"},
		"priority":                {"High"},
		"interaction_level":       {"Active"},
		"follow_up_frequency":     {"weekly"},
		"connection_type_ids":     {"1", "2"},
		"primary_connection_type": {"2"},
		"tags":                    {"golang, oss"},
		"primary_tag_name":        {"golang"},
		"platform[]":              {"Twitter"},
		"handle[]":                {"@alice"},
		"profile_link[]":          {""},
		"is_primary":              {"0"},
	})

	in := bindRelationshipForm(c)
	if in.Name != "Alice" || in.Goal != "Collaborate on tooling" {
		t.Fatalf("name/goal binding: %+v", in)
	}
	if in.Priority != "High" || in.FollowUpFrequency != "weekly" {
		t.Fatalf("priority/frequency binding: %+v", in)
	}
	if len(in.ConnectionTypeIDs) != 2 || in.PrimaryCTypeID != "2" {
		t.Fatalf("connection type binding: %+v", in)
	}
	if in.Tags != "golang, oss" || in.PrimaryTagName != "golang" {
		t.Fatalf("tag binding: %+v", in)
	}
	if len(in.SocialMedia.Platforms) != 1 || in.SocialMedia.Handles[0] != "@alice" {
		t.Fatalf("social media binding: %+v", in.SocialMedia)
	}
}

type capturingSearchService struct {
	query    string
	priority string
	tagID    uint
	ctypeID  uint
}

func (s *capturingSearchService) Relationships(ctx context.Context, query, priority string, tagID, ctypeID uint) ([]services.SearchResult, error) {
	s.query, s.priority, s.tagID, s.ctypeID = query, priority, tagID, ctypeID
	return nil, nil
}

func TestSearchHandlerQueryParamNames(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &capturingSearchService{}
	h := NewSearchHandler(testutil.Logger(t), svc)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/relationships/search?q=ali&priority=High&tag_id=3&ctype_id=7", nil)

	h.Relationships(c)

	if svc.query != "ali" || svc.priority != "High" {
		t.Fatalf("query binding: q=%q priority=%q", svc.query, svc.priority)
	}
	if svc.tagID != 3 || svc.ctypeID != 7 {
		t.Fatalf("id binding: tag_id=%d ctype_id=%d", svc.tagID, svc.ctypeID)
	}
}
