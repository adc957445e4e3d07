package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk.com/staffdesk/config"
	"staffdesk.com/staffdesk/mockhr"
	"staffdesk.com/staffdesk/session"
	v1 "staffdesk.com/staffdesk/staffdesk/v1"
	"staffdesk.com/staffdesk/staffdesk/v1/common"
	"staffdesk.com/staffdesk/utils"
)

func TestFetchAttendanceBoard(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()
	require.NoError(t, f.controller.LoadDepartments(ctx))

	today := common.NewDateOnly(utils.Today())
	board, err := f.controller.FetchAttendanceBoard(ctx, today)
	require.NoError(t, err)

	// Every known department has an entry, empty or not.
	require.Len(t, board, 3)
	assert.Len(t, board["ENGI"], 2)
	assert.Len(t, board["FINA"], 1)
	assert.Len(t, board["HUMA"], 1)

	for deptID, records := range board {
		for _, r := range records {
			assert.Equal(t, deptID, r.DepartmentID)
			assert.NotEmpty(t, r.EmployeeName, "record %s should carry a display name", r.ID)
			assert.NotEmpty(t, r.DepartmentName)
		}
	}

	engi := board["ENGI"]
	names := []string{engi[0].EmployeeName, engi[1].EmployeeName}
	assert.Contains(t, names, "Amara Perera")
	assert.Contains(t, names, "Bimal Silva")
}

func TestBoardIsolatesFailedLookups(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()
	require.NoError(t, f.controller.LoadDepartments(ctx))

	// A department with no attendance contributes an empty list, and a record
	// whose employee no longer exists falls back to the raw id.
	f.controller.departments = append(f.controller.departments, common.Department{ID: "GHOST", Name: "Ghost"})
	today := common.NewDateOnly(utils.Today())
	f.backend.AddAttendance(common.Attendance{EmployeeID: "gone-emp", DepartmentID: "GHOST", Status: common.StatusPresent, Date: today})

	board, err := f.controller.FetchAttendanceBoard(ctx, today)
	require.NoError(t, err)
	require.Len(t, board, 4)

	ghost := board["GHOST"]
	require.Len(t, ghost, 1)
	assert.Equal(t, "gone-emp", ghost[0].EmployeeName)

	// Entirely empty departments still get their (empty, non-nil) slot.
	f.controller.departments = append(f.controller.departments, common.Department{ID: "EMPT", Name: "Empty"})
	board, err = f.controller.FetchAttendanceBoard(ctx, today)
	require.NoError(t, err)
	assert.NotNil(t, board["EMPT"])
	assert.Empty(t, board["EMPT"])
}

func TestStaleEnrichmentBatchDiscarded(t *testing.T) {
	backend := mockhr.New([]byte("test-secret"))
	backend.SeedSample()

	// A newer batch starts while the first one's department queries are in
	// flight; the first batch must be discarded, never published.
	var controller *Controller
	var bump sync.Once
	inner := backend.Router()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/attendance/") {
			bump.Do(func() { controller.enrichSeq++ })
		}
		inner.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	sess := session.New()
	client := v1.NewClient(srv.URL, sess, 5*time.Second)
	controller = NewController(client, sess, config.Default())

	ctx := context.Background()
	require.NoError(t, controller.Login(ctx, "amara@staffdesk.local", "admin123"))
	require.NoError(t, controller.LoadDepartments(ctx))

	board, err := controller.FetchAttendanceBoard(ctx, common.NewDateOnly(utils.Today()))
	assert.ErrorIs(t, err, ErrSuperseded)
	assert.Nil(t, board)
}

func TestEmployeeAttendance(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()
	require.NoError(t, f.controller.LoadDepartments(ctx))
	today := common.NewDateOnly(utils.Today())

	t.Run("Enriched record", func(t *testing.T) {
		record, err := f.controller.EmployeeAttendance(ctx, "e-1002", today)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, common.StatusHalfDay, record.Status)
		assert.Equal(t, "Bimal Silva", record.EmployeeName)
		assert.Equal(t, "Engineering", record.DepartmentName)
	})

	t.Run("Absent day is nil, not an error", func(t *testing.T) {
		past := common.NewDateOnly(utils.MustParseDate("2001-01-01"))
		record, err := f.controller.EmployeeAttendance(ctx, "e-1002", past)
		assert.NoError(t, err)
		assert.Nil(t, record)
	})
}

func TestAttendanceByStatus(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	ctx := context.Background()
	require.NoError(t, f.controller.LoadDepartments(ctx))
	today := common.NewDateOnly(utils.Today())

	records, err := f.controller.AttendanceByStatus(ctx, today, common.StatusPresent)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, common.StatusPresent, r.Status)
		assert.NotEmpty(t, r.EmployeeName)
		assert.NotEmpty(t, r.DepartmentName)
	}

	empty, err := f.controller.AttendanceByStatus(ctx, today, common.StatusNoPay)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
