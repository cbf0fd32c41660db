package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sauti.app/api/internal/http/handler"
	"sauti.app/api/internal/intake"
	"sauti.app/api/internal/model"
	"sauti.app/api/internal/service"
)

var _ = Describe("ReportHandler", func() {
	var (
		router    *gin.Engine
		intakeSvc *mockIntakeService
		reports   *mockReportService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		intakeSvc = &mockIntakeService{}
		reports = &mockReportService{}
		h := handler.NewReportHandler(intakeSvc, reports)
		router.POST("/reports", h.Create)
		router.GET("/reports", h.List)
		router.GET("/reports/:id", h.GetByID)
		router.PATCH("/reports/:id/status", h.UpdateStatus)
	})

	Describe("Create", func() {
		post := func(payload map[string]any) *httptest.ResponseRecorder {
			body, _ := json.Marshal(payload)
			req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("returns 201 with the created report", func() {
			intakeSvc.submitFn = func(_ context.Context, raw intake.RawReport, platform model.Platform) (*model.Report, error) {
				Expect(platform).To(Equal(model.PlatformWeb))
				Expect(raw.Category).To(Equal("education"))
				Expect(raw.Description).To(Equal("School closed"))
				return &model.Report{
					ID:       12345,
					Category: model.CategoryEducation,
					Urgency:  model.UrgencyHigh,
					Status:   model.StatusNew,
					Platform: platform,
				}, nil
			}

			w := post(map[string]any{
				"category":    "education",
				"urgency":     "high",
				"description": "School closed",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["id"]).To(Equal("12345")) // snowflake ids travel as strings
			Expect(resp["status"]).To(Equal("new"))
		})

		It("accepts the legacy message field as the description", func() {
			intakeSvc.submitFn = func(_ context.Context, raw intake.RawReport, _ model.Platform) (*model.Report, error) {
				Expect(raw.Description).To(Equal("Old clients send this"))
				return &model.Report{ID: 1}, nil
			}

			w := post(map[string]any{
				"category": "health",
				"urgency":  "low",
				"message":  "Old clients send this",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("returns 400 when required fields are missing", func() {
			w := post(map[string]any{"description": "no category or urgency"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for a missing description", func() {
			intakeSvc.submitFn = func(_ context.Context, _ intake.RawReport, _ model.Platform) (*model.Report, error) {
				return nil, intake.ErrMissingDescription
			}

			w := post(map[string]any{"category": "health", "urgency": "low"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("missing_description"))
		})

		It("returns 400 for an unknown category", func() {
			intakeSvc.submitFn = func(_ context.Context, _ intake.RawReport, _ model.Platform) (*model.Report, error) {
				return nil, intake.ErrUnknownCategory
			}

			w := post(map[string]any{"category": "corruption", "urgency": "low", "description": "x"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("unknown_category"))
		})

		It("returns 502 when the store is unavailable", func() {
			intakeSvc.submitFn = func(_ context.Context, _ intake.RawReport, _ model.Platform) (*model.Report, error) {
				return nil, fmt.Errorf("%w: connection refused", service.ErrStoreUnavailable)
			}

			w := post(map[string]any{"category": "health", "urgency": "low", "description": "x"})

			Expect(w.Code).To(Equal(http.StatusBadGateway))
			Expect(w.Body.String()).To(ContainSubstring("store_unavailable"))
		})

		It("suppresses the reporter contact on anonymous reports", func() {
			contact := "+2348012345678"
			intakeSvc.submitFn = func(_ context.Context, _ intake.RawReport, _ model.Platform) (*model.Report, error) {
				return &model.Report{ID: 1, IsAnonymous: true, ReporterContact: &contact}, nil
			}

			w := post(map[string]any{
				"category": "health", "urgency": "low", "description": "x",
				"anonymous": true, "contact": contact,
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Body.String()).NotTo(ContainSubstring(contact))
		})
	})

	Describe("List", func() {
		It("returns the recent reports with the default limit", func() {
			reports.listRecentFn = func(_ context.Context, limit int32) ([]model.Report, error) {
				Expect(limit).To(Equal(int32(50)))
				return []model.Report{{ID: 1}, {ID: 2}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/reports", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp []map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveLen(2))
		})

		It("rejects a non-numeric limit", func() {
			req := httptest.NewRequest(http.MethodGet, "/reports?limit=lots", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GetByID", func() {
		It("returns the report", func() {
			reports.getByIDFn = func(_ context.Context, id int64) (*model.Report, error) {
				return &model.Report{ID: id, Category: model.CategoryHealth}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/reports/42", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 404 for a missing report", func() {
			reports.getByIDFn = func(_ context.Context, _ int64) (*model.Report, error) {
				return nil, service.ErrReportNotFound
			}

			req := httptest.NewRequest(http.MethodGet, "/reports/42", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed id", func() {
			req := httptest.NewRequest(http.MethodGet, "/reports/abc", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("UpdateStatus", func() {
		patch := func(id string, payload map[string]any) *httptest.ResponseRecorder {
			body, _ := json.Marshal(payload)
			req := httptest.NewRequest(http.MethodPatch, "/reports/"+id+"/status", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("applies the transition", func() {
			reports.updateStatusFn = func(_ context.Context, id int64, next model.Status) (*model.Report, error) {
				Expect(next).To(Equal(model.StatusUnderReview))
				return &model.Report{ID: id, Status: next}, nil
			}

			w := patch("42", map[string]any{"status": "under-review"})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("under-review"))
		})

		It("returns 400 for an unknown status value", func() {
			w := patch("42", map[string]any{"status": "closed"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("unknown_status"))
		})

		It("returns 409 for an illegal transition", func() {
			reports.updateStatusFn = func(_ context.Context, _ int64, _ model.Status) (*model.Report, error) {
				return nil, fmt.Errorf("%w: resolved -> new", service.ErrInvalidTransition)
			}

			w := patch("42", map[string]any{"status": "new"})

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(w.Body.String()).To(ContainSubstring("invalid_transition"))
		})

		It("returns 404 for a missing report", func() {
			reports.updateStatusFn = func(_ context.Context, _ int64, _ model.Status) (*model.Report, error) {
				return nil, service.ErrReportNotFound
			}

			w := patch("42", map[string]any{"status": "resolved"})

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
