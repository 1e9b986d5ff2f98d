package importer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/leadrouter/crm-backend/ent"
	"github.com/leadrouter/crm-backend/ent/enttest"
	entlead "github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/ent/workspacemember"
	"github.com/leadrouter/crm-backend/pkg/assignment"
	"github.com/leadrouter/crm-backend/pkg/ingest"
	"github.com/leadrouter/crm-backend/pkg/rules"

	_ "github.com/mattn/go-sqlite3"
)

func setup(t *testing.T) (*ent.Client, *Service, *ent.Workspace) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetName("Acme Coaching").
		SetWebhookSecret("shh").
		Save(ctx)
	require.NoError(t, err)

	admin, err := client.User.Create().SetName("Admin").SetEmail("admin@acme.test").Save(ctx)
	require.NoError(t, err)
	_, err = client.WorkspaceMember.Create().
		SetWorkspaceID(ws.ID).
		SetUserID(admin.ID).
		SetRole(workspacemember.RoleAdmin).
		Save(ctx)
	require.NoError(t, err)

	ingestor := ingest.NewIngestor(client, rules.NewStore(client, nil), assignment.NewResolver(), nil, "IN")
	return client, NewService(ingestor, nil), ws
}

func TestImportCSV(t *testing.T) {
	client, svc, ws := setup(t)
	defer client.Close()
	ctx := context.Background()

	input := strings.Join([]string{
		"First Name,Mobile,Email,Course",
		"Ravi,9876543210,ravi@example.com,Golang Basics",
		"Meera,9876543211,,Advanced Golang",
		",,,",
		"NoPhone,,missing@example.com,",
		"Ravi,+91 98765 43210,,Golang Basics",
	}, "\n")

	result, err := svc.ImportCSV(ctx, ws.ID, strings.NewReader(input), Config{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalRows)
	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, 1, result.UpdatedCount, "duplicate phone merges instead of creating")
	assert.Equal(t, 2, result.FailureCount)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 4, result.Errors[0].Row, "row numbers are 1-based including the header")

	leads, err := client.Lead.Query().Where(entlead.WorkspaceIDEQ(ws.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	for _, l := range leads {
		assert.Equal(t, "IMPORT", l.Source, "rows without a source get the import tag")
	}
}

func TestImportCSV_SourceColumnWins(t *testing.T) {
	client, svc, ws := setup(t)
	defer client.Close()

	input := "first_name,phone,source\nRavi,9876543210,fb\n"
	result, err := svc.ImportCSV(context.Background(), ws.ID, strings.NewReader(input), Config{})
	require.NoError(t, err)
	require.Equal(t, 1, result.CreatedCount)

	l, err := client.Lead.Query().First(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FACEBOOK", l.Source)
}

func TestImportCSV_RowLimit(t *testing.T) {
	client, svc, ws := setup(t)
	defer client.Close()

	input := "first_name,phone\nA,9876543210\nB,9876543211\nC,9876543212\n"
	_, err := svc.ImportCSV(context.Background(), ws.ID, strings.NewReader(input), Config{MaxRows: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row limit")
}

func TestImportXLSX(t *testing.T) {
	client, svc, ws := setup(t)
	defer client.Close()
	ctx := context.Background()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"first_name", "phone", "course_interested"},
		{"Ravi", "9876543210", "Golang Basics"},
		{"Meera", 9876543211, nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	result, err := svc.ImportXLSX(ctx, ws.ID, &buf, Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, 0, result.FailureCount)

	count, err := client.Lead.Query().Where(entlead.WorkspaceIDEQ(ws.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
