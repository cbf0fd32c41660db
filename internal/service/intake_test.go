package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sauti.app/api/internal/intake"
	"sauti.app/api/internal/model"
	"sauti.app/api/internal/queue"
	"sauti.app/api/internal/service"
)

var _ = Describe("IntakeService", func() {
	var (
		svc      service.IntakeService
		reports  *mockReportStore
		producer *mockProducer
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		reports = &mockReportStore{}
		producer = &mockProducer{}
		svc = service.NewIntakeService(reports, producer, nil)
	})

	It("normalizes, persists and returns the report", func() {
		report, err := svc.Submit(ctx, intake.RawReport{
			Category:    "water",
			Urgency:     "high",
			Description: "Borehole broken",
			Location:    "Dikwa",
		}, model.PlatformSMS)

		Expect(err).NotTo(HaveOccurred())
		Expect(report.Category).To(Equal(model.CategoryWaterSanitation))
		Expect(report.Urgency).To(Equal(model.UrgencyHigh))
		Expect(report.Status).To(Equal(model.StatusNew))
		Expect(reports.createCalls).To(Equal(1))
	})

	It("does not persist when normalization rejects the payload", func() {
		_, err := svc.Submit(ctx, intake.RawReport{
			Category:    "corruption",
			Urgency:     "high",
			Description: "Something",
		}, model.PlatformWeb)

		Expect(err).To(MatchError(intake.ErrUnknownCategory))
		Expect(reports.createCalls).To(BeZero())
	})

	It("wraps persistence failures as store unavailable", func() {
		reports.createFn = func(_ context.Context, _ *model.Report) error {
			return errors.New("connection refused")
		}

		_, err := svc.Submit(ctx, intake.RawReport{
			Category:    "health",
			Urgency:     "low",
			Description: "Clinic closed",
		}, model.PlatformWeb)

		Expect(err).To(MatchError(service.ErrStoreUnavailable))
		Expect(producer.enqueueCalls).To(BeZero())
	})

	It("enqueues a confirmation when the reporter left a contact", func() {
		contact := "+2348012345678"

		report, err := svc.Submit(ctx, intake.RawReport{
			Category:    "GBV",
			Urgency:     "critical",
			Description: "Woman attacked at market",
			Contact:     &contact,
		}, model.PlatformSMS)

		Expect(err).NotTo(HaveOccurred())
		Expect(producer.enqueueCalls).To(Equal(1))
		Expect(producer.lastMsg.ReportID).To(Equal(report.ID))
		Expect(producer.lastMsg.Channel).To(Equal(model.PlatformSMS))
		Expect(producer.lastMsg.Recipient).To(Equal(contact))
		Expect(producer.lastMsg.Category).To(Equal(model.CategoryGBV))
	})

	It("skips the confirmation when no contact was given", func() {
		_, err := svc.Submit(ctx, intake.RawReport{
			Category:    "health",
			Urgency:     "low",
			Description: "Clinic closed",
		}, model.PlatformWeb)

		Expect(err).NotTo(HaveOccurred())
		Expect(producer.enqueueCalls).To(BeZero())
	})

	It("still succeeds when the confirmation queue fails", func() {
		contact := "+2348012345678"
		producer.enqueueFn = func(_ context.Context, _ queue.ConfirmationMessage) error {
			return errors.New("redis down")
		}

		report, err := svc.Submit(ctx, intake.RawReport{
			Category:    "health",
			Urgency:     "low",
			Description: "Clinic closed",
			Contact:     &contact,
		}, model.PlatformWeb)

		Expect(err).NotTo(HaveOccurred())
		Expect(report).NotTo(BeNil())
		Expect(producer.enqueueCalls).To(Equal(1))
	})

	It("works without a producer wired", func() {
		contact := "+2348012345678"
		svc = service.NewIntakeService(reports, nil, nil)

		_, err := svc.Submit(ctx, intake.RawReport{
			Category:    "health",
			Urgency:     "low",
			Description: "Clinic closed",
			Contact:     &contact,
		}, model.PlatformWeb)

		Expect(err).NotTo(HaveOccurred())
	})
})
