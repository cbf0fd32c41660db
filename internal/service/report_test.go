package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sauti.app/api/internal/model"
	"sauti.app/api/internal/service"
)

var _ = Describe("ReportService", func() {
	var (
		svc     service.ReportService
		reports *mockReportStore
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		reports = &mockReportStore{}
		svc = service.NewReportService(reports, &mockTxRunner{
			withTxFn: func(ctx context.Context, fn func(stores service.StoreProvider) error) error {
				return fn(&mockStoreProvider{reports: reports})
			},
		}, nil)
	})

	Describe("GetByID", func() {
		It("returns the report", func() {
			reports.getByIDFn = func(_ context.Context, id int64) (*model.Report, error) {
				return &model.Report{ID: id, Category: model.CategoryHealth}, nil
			}

			report, err := svc.GetByID(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.ID).To(Equal(int64(42)))
		})

		It("maps a missing report onto the service error", func() {
			_, err := svc.GetByID(ctx, 42)
			Expect(err).To(MatchError(service.ErrReportNotFound))
		})
	})

	Describe("ListRecent", func() {
		It("passes the limit through", func() {
			reports.listRecentFn = func(_ context.Context, limit int32) ([]model.Report, error) {
				Expect(limit).To(Equal(int32(25)))
				return []model.Report{{ID: 1}, {ID: 2}}, nil
			}

			list, err := svc.ListRecent(ctx, 25)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})
	})

	Describe("UpdateStatus", func() {
		It("applies a legal forward transition", func() {
			reports.getByIDFn = func(_ context.Context, id int64) (*model.Report, error) {
				return &model.Report{ID: id, Status: model.StatusNew}, nil
			}
			reports.updateStatusFn = func(_ context.Context, id int64, status model.Status) (*model.Report, error) {
				Expect(status).To(Equal(model.StatusUnderReview))
				return &model.Report{ID: id, Status: status}, nil
			}

			report, err := svc.UpdateStatus(ctx, 42, model.StatusUnderReview)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Status).To(Equal(model.StatusUnderReview))
		})

		It("rejects a backward transition without writing", func() {
			reports.getByIDFn = func(_ context.Context, id int64) (*model.Report, error) {
				return &model.Report{ID: id, Status: model.StatusResolved}, nil
			}
			updated := false
			reports.updateStatusFn = func(_ context.Context, id int64, status model.Status) (*model.Report, error) {
				updated = true
				return nil, nil
			}

			_, err := svc.UpdateStatus(ctx, 42, model.StatusUnderReview)
			Expect(err).To(MatchError(service.ErrInvalidTransition))
			Expect(updated).To(BeFalse())
		})

		It("maps a missing report onto the service error", func() {
			_, err := svc.UpdateStatus(ctx, 42, model.StatusResolved)
			Expect(err).To(MatchError(service.ErrReportNotFound))
		})

		It("propagates tx runner failures", func() {
			txErr := errors.New("tx failed")
			svc = service.NewReportService(reports, &mockTxRunner{
				withTxFn: func(_ context.Context, _ func(stores service.StoreProvider) error) error {
					return txErr
				},
			}, nil)

			_, err := svc.UpdateStatus(ctx, 42, model.StatusResolved)
			Expect(err).To(MatchError(txErr))
		})
	})
})
