package client_test

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Sumit10612/wealth-manager/client"
	"github.com/Sumit10612/wealth-manager/internal/config"
	"github.com/Sumit10612/wealth-manager/internal/database"
	"github.com/Sumit10612/wealth-manager/internal/models"
	"github.com/Sumit10612/wealth-manager/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const password = "client-test-secret"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		Auth:   config.AuthConfig{Password: password},
	}
	srv := httptest.NewServer(router.SetupRouter(cfg, db))
	t.Cleanup(srv.Close)
	return srv
}

func loggedIn(t *testing.T) *client.Client {
	t.Helper()
	srv := newServer(t)
	c := client.New(srv.URL)
	require.NoError(t, c.Login(password))
	return c
}

func strPtr(s string) *string { return &s }

func TestLogin(t *testing.T) {
	srv := newServer(t)
	c := client.New(srv.URL)

	require.NoError(t, c.Health(), "health must be open before login")

	err := c.Login("wrong")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)

	require.NoError(t, c.Login(password))
	_, err = c.AssetTypes()
	assert.NoError(t, err, "token from login must open protected routes")
}

func TestReferenceLifecycle(t *testing.T) {
	c := loggedIn(t)

	created, err := c.CreateAssetType("Bonds")
	require.NoError(t, err)
	assert.Equal(t, "Bonds", created.Name)
	assert.NotZero(t, created.ID)

	list, err := c.AssetTypes()
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, ref := range list {
		names = append(names, ref.Name)
	}
	assert.Equal(t, []string{"Bonds", "Fixed Deposits", "Mutual Funds", "Stocks"}, names)

	_, err = c.CreateAssetType("Bonds")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)

	require.NoError(t, c.DeleteAssetType(created.ID))
	require.NoError(t, c.DeleteAssetType(created.ID), "reference delete is idempotent")
}

func TestTransactionRoundTrip(t *testing.T) {
	c := loggedIn(t)

	in := client.TransactionInput{
		SchemeName:      "NIFTY 50 Index",
		AssetType:       "Mutual Funds",
		TransactionType: "Buy",
		Units:           10,
		Nav:             150.25,
		Amount:          1502.5,
		Date:            "2024-05-10",
		Platform:        strPtr("Zerodha"),
	}
	id, err := c.CreateTransaction(in)
	require.NoError(t, err)

	got, err := c.Transaction(id)
	require.NoError(t, err)
	assert.Equal(t, in.SchemeName, got.SchemeName)
	assert.Equal(t, in.AssetType, got.AssetType)
	assert.Equal(t, in.TransactionType, got.TransactionType)
	assert.Equal(t, in.Units, got.Units)
	assert.Equal(t, in.Nav, got.Nav)
	assert.Equal(t, in.Amount, got.Amount)
	assert.Equal(t, in.Date, got.Date)
	require.NotNil(t, got.Platform)
	assert.Equal(t, "Zerodha", *got.Platform)
	assert.Nil(t, got.Account)
}

func TestFilterSupersetProperty(t *testing.T) {
	c := loggedIn(t)

	seed := []client.TransactionInput{
		{SchemeName: "A", AssetType: "Stocks", TransactionType: "Buy",
			Units: 1, Nav: 1, Amount: 100, Date: "2024-01-01",
			Platform: strPtr("Zerodha"), Account: strPtr("Personal")},
		{SchemeName: "B", AssetType: "Stocks", TransactionType: "Buy",
			Units: 1, Nav: 1, Amount: 200, Date: "2024-01-02",
			Platform: strPtr("Groww")},
		{SchemeName: "C", AssetType: "Mutual Funds", TransactionType: "Buy",
			Units: 1, Nav: 1, Amount: 300, Date: "2024-01-03",
			Platform: strPtr("Zerodha"), Account: strPtr("Personal")},
	}
	for _, in := range seed {
		_, err := c.CreateTransaction(in)
		require.NoError(t, err)
	}

	ids := func(txs []models.Transaction) map[uint]bool {
		m := make(map[uint]bool, len(txs))
		for _, tx := range txs {
			m[tx.ID] = true
		}
		return m
	}

	all, err := c.Transactions(client.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	byPlatform, err := c.Transactions(client.TransactionFilter{Platform: "Zerodha"})
	require.NoError(t, err)
	assert.Len(t, byPlatform, 2)

	narrow, err := c.Transactions(client.TransactionFilter{
		Platform: "Zerodha", AssetType: "Stocks", Account: "Personal",
	})
	require.NoError(t, err)
	assert.Len(t, narrow, 1)

	// adding filters can only shrink the result set
	allIDs, platformIDs := ids(all), ids(byPlatform)
	for id := range platformIDs {
		assert.True(t, allIDs[id], "filtered result %d missing from unfiltered set", id)
	}
	for id := range ids(narrow) {
		assert.True(t, platformIDs[id], "narrow result %d missing from wider set", id)
	}
}

func TestUpdateSemantics(t *testing.T) {
	c := loggedIn(t)

	in := client.TransactionInput{
		SchemeName: "Before", AssetType: "Stocks", TransactionType: "Buy",
		Units: 5, Nav: 20, Amount: 100, Date: "2024-02-01",
		Account: strPtr("Personal"),
	}
	id, err := c.CreateTransaction(in)
	require.NoError(t, err)

	before, err := c.Transaction(id)
	require.NoError(t, err)

	err = c.UpdateTransaction(9999, in)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)

	in.SchemeName = "After"
	in.TransactionType = "Sell"
	in.Account = nil
	require.NoError(t, c.UpdateTransaction(id, in))

	after, err := c.Transaction(id)
	require.NoError(t, err)
	assert.Equal(t, "After", after.SchemeName)
	assert.Equal(t, "Sell", after.TransactionType)
	assert.Nil(t, after.Account, "full overwrite nulls omitted optional fields")
	assert.Equal(t, before.ID, after.ID)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt), "created_at is immutable")
}

func TestSummaryAggregation(t *testing.T) {
	c := loggedIn(t)

	seed := []client.TransactionInput{
		{SchemeName: "S", AssetType: "Stocks", TransactionType: "Buy",
			Units: 1, Nav: 1, Amount: 100, Date: "2024-01-01"},
		{SchemeName: "S", AssetType: "Stocks", TransactionType: "Sell",
			Units: 1, Nav: 1, Amount: 40, Date: "2024-01-02"},
		{SchemeName: "S", AssetType: "Stocks", TransactionType: "Dividend",
			Units: 0, Nav: 0, Amount: 5, Date: "2024-01-03"},
	}
	for _, in := range seed {
		_, err := c.CreateTransaction(in)
		require.NoError(t, err)
	}

	txs, err := c.Transactions(client.TransactionFilter{})
	require.NoError(t, err)

	s := client.Summary(txs)
	assert.InDelta(t, 65.0, s.Total, 1e-9)
	assert.InDelta(t, 65.0, s.ByAssetType["Stocks"], 1e-9)

	narrowed := client.SummaryFor(txs, "Stocks")
	assert.InDelta(t, 65.0, narrowed.Total, 1e-9)
	assert.Equal(t, 3, narrowed.Count)
}
