package cmd

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/chinmay1088/siago/chains/sia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() string {
	var hash [sia.UnlockHashSize]byte
	for i := range hash {
		hash[i] = byte(i)
	}
	return sia.AddressFromHash(hash)
}

func TestWalletStatus(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet", http.StatusOK, `{"encrypted":true,"unlocked":false,"confirmedsiacoinbalance":"1500000000000000000000000","unconfirmedoutgoingsiacoins":"0","unconfirmedincomingsiacoins":"0","siafundbalance":"0","siacoinclaimbalance":"0"}`)

	out, err := c.run("", "wallet")
	require.NoError(t, err)
	assert.Contains(t, out, "Locked")
	assert.Contains(t, out, "1.5 SC")
}

func TestWalletStatusShowsExactBalance(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet", http.StatusOK, `{"encrypted":true,"unlocked":true,"confirmedsiacoinbalance":"1234567890000000000000000"}`)

	out, err := c.run("", "wallet")
	require.NoError(t, err)
	assert.Contains(t, out, "1.23456789 SC")
	assert.Contains(t, out, "Unlocked")
}

func TestWalletStatusJSON(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet", http.StatusOK, `{"encrypted":true,"unlocked":true,"confirmedsiacoinbalance":"123456"}`)

	out, err := c.run("", "wallet", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"confirmedsiacoinbalance": "123456"`)
}

func TestWalletSendSiacoins(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet/siacoins", http.StatusOK, `{"transactionids":["tx1"]}`)
	address := testAddress()

	out, err := c.run("", "wallet", "send", "siacoins", "10SC", address)
	require.NoError(t, err)
	assert.Contains(t, out, "tx1")
	assert.Contains(t, out, "10 SC")

	req := c.daemon.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/wallet/siacoins", req.Path)
	assert.Equal(t, url.Values{
		"amount":      {"10000000000000000000000000"},
		"destination": {address},
	}, req.Form)
}

func TestWalletSendRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad address", args: []string{"wallet", "send", "siacoins", "10SC", "not-an-address"}},
		{name: "bad amount", args: []string{"wallet", "send", "siacoins", "ten", testAddress()}},
		{name: "fractional hastings", args: []string{"wallet", "send", "siacoins", "0.5", testAddress()}},
		{name: "bad siafund amount", args: []string{"wallet", "send", "siafunds", "1.5", testAddress()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(t)

			_, err := c.run("", tt.args...)
			require.Error(t, err)
			assert.Empty(t, c.daemon.recorded())
		})
	}
}

func TestWalletSendInsufficientBalance(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet/siafunds", http.StatusPaymentRequired, `{"message":"insufficient balance"}`)

	_, err := c.run("", "wallet", "send", "siafunds", "5", testAddress())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP code: 402 With message: insufficient balance")
}

func TestWalletUnlock(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "password from stdin", stdin: "hunter2\n", args: []string{"wallet", "unlock"}},
		{name: "password from flag", args: []string{"wallet", "unlock", "--password", "hunter2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(t)
			c.daemon.on("/wallet/unlock", http.StatusNoContent, "")

			out, err := c.run(tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, "Wallet unlocked")
			assert.Equal(t, url.Values{"encryptionpassword": {"hunter2"}}, c.daemon.last(t).Form)
		})
	}
}

func TestWalletInit(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet/init", http.StatusOK, `{"primaryseed":"abbey abducts ability"}`)

	out, err := c.run("secret\nsecret\n", "wallet", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "abbey abducts ability")
	assert.Equal(t, url.Values{"encryptionpassword": {"secret"}}, c.daemon.last(t).Form)
}

func TestWalletInitWithoutPassword(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet/init", http.StatusOK, `{"primaryseed":"abbey abducts ability"}`)

	_, err := c.run("", "wallet", "init", "--no-password")
	require.NoError(t, err)
	assert.Empty(t, c.daemon.last(t).Form)
}

func TestWalletInitPasswordMismatch(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("one\ntwo\n", "wallet", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
	assert.Empty(t, c.daemon.recorded())
}

func TestWalletChangePassword(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		flags []string
		want  url.Values
	}{
		{
			name:  "both prompted",
			stdin: "old\nnew\n",
			want:  url.Values{"encryptionpassword": {"old"}, "newpassword": {"new"}},
		},
		{
			name:  "current password from flag",
			stdin: "brand-new\n",
			flags: []string{"--password", "old-from-flag"},
			want:  url.Values{"encryptionpassword": {"old-from-flag"}, "newpassword": {"brand-new"}},
		},
		{
			name:  "new password from flag",
			stdin: "typed-old\n",
			flags: []string{"--new-password", "new-from-flag"},
			want:  url.Values{"encryptionpassword": {"typed-old"}, "newpassword": {"new-from-flag"}},
		},
		{
			name:  "both from flags",
			stdin: "ignored\nignored\n",
			flags: []string{"--password", "a", "--new-password", "b"},
			want:  url.Values{"encryptionpassword": {"a"}, "newpassword": {"b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(t)
			c.daemon.on("/wallet/changepassword", http.StatusNoContent, "")

			args := append([]string{"wallet", "change-password"}, tt.flags...)
			_, err := c.run(tt.stdin, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.daemon.last(t).Form)
		})
	}
}

func TestWalletLoadSiagKeys(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet/siagkey", http.StatusNoContent, "")

	_, err := c.run("", "wallet", "load", "siag", "a.siakey", "b.siakey", "--password", "pw")
	require.NoError(t, err)
	assert.Equal(t, url.Values{"encryptionpassword": {"pw"}, "keyfiles": {"a.siakey,b.siakey"}}, c.daemon.last(t).Form)
}

func TestWalletLoadSeed(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet/seed", http.StatusNoContent, "")

	_, err := c.run("pw\n", "wallet", "load", "seed", "abbey", "abducts", "ability")
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"encryptionpassword": {"pw"},
		"dictionary":         {"english"},
		"seed":               {"abbey abducts ability"},
	}, c.daemon.last(t).Form)
}

func TestWalletSeedDictionaryFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		route    string
		response string
		asFile   bool
		want     string
	}{
		{
			name:  "load seed uses config",
			args:  []string{"wallet", "load", "seed", "abbey", "--password", "pw"},
			route: "/wallet/seed",
			want:  "german",
		},
		{
			name:  "load seed flag wins",
			args:  []string{"wallet", "load", "seed", "abbey", "--password", "pw", "--dictionary", "japanese"},
			route: "/wallet/seed",
			want:  "japanese",
		},
		{
			name:     "seeds uses config",
			args:     []string{"wallet", "seeds"},
			route:    "/wallet/seeds",
			response: `{"primaryseed":"abbey","allseeds":["abbey"]}`,
			asFile:   true,
			want:     "german",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(t)
			c.config("dictionary = \"german\"\n")
			if tt.response != "" {
				c.daemon.on(tt.route, http.StatusOK, tt.response)
			} else {
				c.daemon.on(tt.route, http.StatusNoContent, "")
			}

			_, err := c.run("", tt.args...)
			require.NoError(t, err)

			req := c.daemon.last(t)
			assert.Equal(t, tt.route, req.Path)
			if tt.asFile {
				assert.Equal(t, tt.want, req.Files["dictionary"])
			} else {
				assert.Equal(t, []string{tt.want}, req.Form["dictionary"])
			}
		})
	}
}

func TestWalletTransactionsDefaultsToCurrentHeight(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/consensus", http.StatusOK, `{"synced":true,"height":42}`)
	c.daemon.on("/wallet/transactions", http.StatusOK, `{"confirmedtransactions":[{"transactionid":"abc"}],"unconfirmedtransactions":[]}`)

	out, err := c.run("", "wallet", "transactions", "--start", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Confirmed (1)")
	assert.Contains(t, out, "abc")
	assert.Equal(t, "startheight=10&endheight=42", c.daemon.last(t).RawQuery)
}

func TestWalletTransactionFundTypes(t *testing.T) {
	c := newCLI(t)
	c.daemon.on("/wallet/transaction/abc", http.StatusOK, `{"transaction":{"transactionid":"abc","inputs":[{"fundtype":"siacoin input","walletaddress":true,"value":"2000000000000000000000000"}],"outputs":[{"fundtype":"siafund output","walletaddress":true,"value":"10"},{"fundtype":"siacoin output","walletaddress":true,"value":"1000000000000000000000000"}]}}`)

	out, err := c.run("", "wallet", "transaction", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "+10 SF")
	assert.NotContains(t, out, "+10 H")
	assert.Contains(t, out, "+1 SC")
	assert.Contains(t, out, "-2 SC")
}

func TestWalletTransactionsRelated(t *testing.T) {
	c := newCLI(t)
	address := testAddress()
	c.daemon.on("/wallet/transactions/"+address, http.StatusOK, `{"transactions":[{"transactionid":"def"}]}`)

	out, err := c.run("", "wallet", "transactions", "--address", address)
	require.NoError(t, err)
	assert.Contains(t, out, "Related (1)")
	assert.Contains(t, out, "def")
}

func TestWalletVerify(t *testing.T) {
	c := newCLI(t)
	address := testAddress()
	c.daemon.on("/wallet/verify/address/"+address, http.StatusOK, `{"valid":true}`)

	out, err := c.run("", "wallet", "verify", address)
	require.NoError(t, err)
	assert.Contains(t, out, "Address is valid")

	_, err = c.run("", "wallet", "verify", "abcd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid address length")
}
