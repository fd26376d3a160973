package jobs

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DeliveryReminderJob reminds customers about deliveries scheduled for the
// next day. Runs every morning and sends one reminder per undelivered
// shipment whose preferred delivery date is tomorrow.
type DeliveryReminderJob struct {
	db       *gorm.DB
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryReminderJob creates a new job for sending delivery reminders.
func NewDeliveryReminderJob(db *gorm.DB, notifier ports.Notifier, logger *slog.Logger) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		db:       db,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_reminder_job"),
	}
}

// Start begins the delivery reminder job, running daily at 08:00.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 8 * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started (running daily at 08:00)")
	return nil
}

// Stop stops the delivery reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}

func (j *DeliveryReminderJob) run(ctx context.Context) error {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			delivery_address,
			preferred_delivery_date,
			preferred_delivery_time
		FROM shipments
		WHERE deleted_at IS NULL
		  AND status <> 'Delivered'
		  AND preferred_delivery_date = CURRENT_DATE + INTERVAL '1 day'
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              uuid.UUID
			ownerID         uuid.UUID
			deliveryAddress string
			deliveryDate    time.Time
			timeWindow      sql.NullString
		)
		if err = rows.Scan(&id, &ownerID, &deliveryAddress, &deliveryDate, &timeWindow); err != nil {
			return err
		}

		recipientID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			j.logger.WarnContext(ctx, "Skipping reminder for malformed owner id",
				"shipment_id", id.String(), "error", idErr)
			continue
		}

		data := map[string]string{
			"shipment_id":      id.String(),
			"delivery_address": deliveryAddress,
			"delivery_date":    deliveryDate.Format("2006-01-02"),
		}
		if timeWindow.Valid {
			data["time_window"] = timeWindow.String
		}

		// A failed reminder is logged, not retried: the next run picks up
		// nothing for this shipment, so the reminder is best effort.
		if sendErr := j.notifier.Send(ctx, recipientID, ports.TemplateDeliveryReminder, data); sendErr != nil {
			j.logger.WarnContext(ctx, "Failed to send delivery reminder",
				"shipment_id", id, "error", sendErr)
		}
	}

	return rows.Err()
}
