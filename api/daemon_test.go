package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	client, daemon := newTestClient(t, http.StatusOK, `{"version":"1.0.3"}`)

	version, err := client.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.0.3", version)
	assert.Equal(t, "/daemon/version", daemon.last(t).Path)

	// same daemon state, same answer
	again, err := client.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, version, again)
}

func TestGetConstants(t *testing.T) {
	client, daemon := newTestClient(t, http.StatusOK, `{
		"genesistimestamp": 1433600000,
		"blocksizelimit": 2000000,
		"blockfrequency": 600,
		"targetwindow": 1000,
		"mediantimestampwindow": 11,
		"futurethreshold": 10800,
		"siafundcount": "10000",
		"siafundportion": "39/1000",
		"initialcoinbase": 300000,
		"minimumcoinbase": 30000,
		"maturitydelay": 144,
		"roottarget": [0,0,0,0,32,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0],
		"maxadjustmentup": "5/2",
		"maxadjustmentdown": "2/5",
		"siacoinprecision": "1000000000000000000000000"
	}`)

	constants, err := client.GetConstants()
	require.NoError(t, err)
	assert.Equal(t, "/daemon/constants", daemon.last(t).Path)
	assert.Equal(t, uint64(600), constants.BlockFrequency)
	assert.Equal(t, "39/1000", constants.SiafundPortion)
	assert.Equal(t, byte(32), constants.RootTarget[4])
	assert.True(t, decimal.RequireFromString("1000000000000000000000000").Equal(constants.SiacoinPrecision))
}

func TestStopDaemon(t *testing.T) {
	client, daemon := newTestClient(t, http.StatusNoContent, "")

	require.NoError(t, client.StopDaemon())
	req := daemon.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/daemon/stop", req.Path)
}

func TestOperationErrorKeepsDaemonRequestError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusPaymentRequired, `{"message":"insufficient balance"}`)

	_, err := client.GetVersion()
	require.Error(t, err)

	var reqErr *DaemonRequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusPaymentRequired, reqErr.StatusCode)
	assert.Equal(t, "insufficient balance", reqErr.Message)
}

func TestFieldExtractionRejectsNonJSON(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, "not json")

	_, err := client.GetVersion()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotJSON)
}
