package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"healthnet-api/internal/domain/entity"
)

// Patient, doctor and hospital listings all share listOrder; this pins
// the chronological contract (date ascending, ties by status then
// creation) without a live database.
func TestAppointmentListOrderClause(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	stmt := db.Model(&entity.Appointment{}).
		Where("patient_id = ?", uuid.New()).
		Order(listOrder).
		Find(&[]entity.Appointment{}).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "ORDER BY appointment_date ASC, status ASC, created_at ASC")
	assert.Contains(t, sql, "patient_id")
}
