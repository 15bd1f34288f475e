package schedule

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dugoutlabs/diamond/config"
	"github.com/gin-gonic/gin"
)

type stubRepo struct {
	deleted   []uint
	deleteErr error
}

func (s *stubRepo) CreateSchedule(doc *Document) error { return nil }

func (s *stubRepo) GetScheduleByID(id uint) (*Document, error) {
	return nil, errors.New("schedule not found")
}

func (s *stubRepo) GetAllSchedules(page, limit int, filters map[string]interface{}) ([]Document, int64, error) {
	return nil, 0, nil
}

func (s *stubRepo) DeleteSchedule(id uint) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func TestDeleteSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		path       string
		deleteErr  error
		wantStatus int
	}{
		{"existing schedule", "/schedules/7", nil, http.StatusOK},
		{"missing schedule", "/schedules/7", errors.New("schedule not found"), http.StatusNotFound},
		{"malformed id", "/schedules/seven", nil, http.StatusBadRequest},
		{"database failure", "/schedules/7", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{deleteErr: tt.deleteErr}
			controller := NewScheduleController(repo, NewDraftStore(), &seqProvider{}, &config.Config{})

			r := gin.New()
			r.DELETE("/schedules/:schedule_id", controller.DeleteSchedule)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if len(repo.deleted) != 1 || repo.deleted[0] != 7 {
					t.Errorf("deleted ids = %v, want [7]", repo.deleted)
				}
			} else if len(repo.deleted) != 0 {
				t.Errorf("unexpected deletes: %v", repo.deleted)
			}
		})
	}
}

func TestCreateScheduleBindFailureReportsFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	controller := NewScheduleController(&stubRepo{}, NewDraftStore(), &seqProvider{}, &config.Config{})
	r := gin.New()
	r.POST("/schedules", controller.CreateSchedule)

	// Date is required, so binding fails before any repository call.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/schedules", strings.NewReader(`{"team_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if body := w.Body.String(); !strings.Contains(body, `"fields"`) || !strings.Contains(body, "Date") {
		t.Errorf("body = %s, want per-field validation details", body)
	}
}
