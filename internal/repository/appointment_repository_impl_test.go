package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"clinica-dental-api/internal/domain/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures the SQL gorm would send, with bound values inlined.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	if len(r.statements) == 0 {
		t.Fatal("no SQL was generated")
	}
	return r.statements[len(r.statements)-1]
}

// dryRunDB builds statements without opening a connection. Writes skip the
// default transaction, whose BEGIN would dial the server.
func dryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=clinic dbname=citas sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 rec,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db, rec
}

func assertContains(t *testing.T, sql string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(sql, p) {
			t.Fatalf("expected %q in SQL:\n%s", p, sql)
		}
	}
}

func TestAppointmentRepository_FindOverlapping(t *testing.T) {
	window := entity.TimeRange{
		Start: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC),
	}

	t.Run("inclusive bounds excluding the edited appointment", func(t *testing.T) {
		db, rec := dryRunDB(t)
		repo := NewAppointmentRepository(db)

		if _, err := repo.FindOverlapping(context.Background(), &entity.OverlapFilter{
			DentistID: 2, Range: window, ExcludeID: 5, Inclusive: true,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertContains(t, rec.last(t),
			"dentist_id = 2",
			"start_time <= ",
			"end_time >= ",
			"id <> 5",
			`"appointments"."deleted_at" IS NULL`,
		)
	})

	t.Run("strict bounds for back-to-back bookings", func(t *testing.T) {
		db, rec := dryRunDB(t)
		repo := NewAppointmentRepository(db)

		if _, err := repo.FindOverlapping(context.Background(), &entity.OverlapFilter{
			DentistID: 2, Range: window,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sql := rec.last(t)
		assertContains(t, sql, "start_time < ", "end_time > ")
		if strings.Contains(sql, "<>") {
			t.Fatalf("no appointment should be excluded:\n%s", sql)
		}
	})
}

func TestAppointmentRepository_DeleteIsSoft(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAppointmentRepository(db)

	if _, err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sql := rec.last(t)
	assertContains(t, sql, `UPDATE "appointments" SET "deleted_at"=`, "id = 7")
}

func TestAppointmentRepository_UpdateSkipsDeletedRows(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAppointmentRepository(db)

	appointment := &entity.Appointment{
		ID:        7,
		ClientID:  1,
		DentistID: 2,
		ServiceID: 3,
		StartTime: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC),
		Status:    entity.AppointmentStatusConfirmed,
	}
	if _, err := repo.Update(context.Background(), appointment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sql := rec.last(t)
	assertContains(t, sql, `UPDATE "appointments" SET`, `"status"='Confirmado'`, `"appointments"."deleted_at" IS NULL`, `"id" = 7`)
	if strings.Contains(sql, "INSERT") || strings.Contains(sql, "ON CONFLICT") {
		t.Fatalf("update must not fall back to an upsert:\n%s", sql)
	}
	if strings.Contains(sql, `"deleted_at"=`) {
		t.Fatalf("update must not touch deleted_at:\n%s", sql)
	}
}

func TestServiceRepository_FindByDentistID(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewServiceRepository(db)

	if _, err := repo.FindByDentistID(context.Background(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContains(t, rec.last(t),
		"JOIN dentist_services ON dentist_services.service_id = services.id",
		"dentist_services.dentist_id = 4",
	)
}
