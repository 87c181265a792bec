package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Currency values (hastings) are sent by siad as decimal strings and decoded
// into decimal.Decimal.

// DaemonConstants is the response body for the [GET] /daemon/constants endpoint.
type DaemonConstants struct {
	GenesisTimestamp      int64           `json:"genesistimestamp"`
	BlockSizeLimit        uint64          `json:"blocksizelimit"`
	BlockFrequency        uint64          `json:"blockfrequency"`
	TargetWindow          uint64          `json:"targetwindow"`
	MedianTimestampWindow uint64          `json:"mediantimestampwindow"`
	FutureThreshold       uint64          `json:"futurethreshold"`
	SiafundCount          decimal.Decimal `json:"siafundcount"`
	SiafundPortion        string          `json:"siafundportion"`
	InitialCoinbase       uint64          `json:"initialcoinbase"`
	MinimumCoinbase       uint64          `json:"minimumcoinbase"`
	MaturityDelay         uint64          `json:"maturitydelay"`
	RootTarget            [32]byte        `json:"roottarget"`
	RootDepth             [32]byte        `json:"rootdepth"`
	MaxAdjustmentUp       string          `json:"maxadjustmentup"`
	MaxAdjustmentDown     string          `json:"maxadjustmentdown"`
	SiacoinPrecision      decimal.Decimal `json:"siacoinprecision"`
}

// ConsensusInfo is the response body for the [GET] /consensus endpoint.
type ConsensusInfo struct {
	Synced       bool            `json:"synced"`
	Height       uint64          `json:"height"`
	CurrentBlock string          `json:"currentblock"`
	Target       [32]byte        `json:"target"`
	Difficulty   decimal.Decimal `json:"difficulty"`
}

// GatewayPeer is a peer known to the gateway.
type GatewayPeer struct {
	NetAddress string `json:"netaddress"`
	Version    string `json:"version"`
	Inbound    bool   `json:"inbound"`
	Local      bool   `json:"local"`
}

// GatewayInfo is the response body for the [GET] /gateway endpoint.
type GatewayInfo struct {
	NetAddress string        `json:"netaddress"`
	Peers      []GatewayPeer `json:"peers"`
}

// HostExternalSettings are the settings a host advertises to renters.
type HostExternalSettings struct {
	AcceptingContracts     bool            `json:"acceptingcontracts"`
	MaxDownloadBatchSize   uint64          `json:"maxdownloadbatchsize"`
	MaxDuration            uint64          `json:"maxduration"`
	MaxReviseBatchSize     uint64          `json:"maxrevisebatchsize"`
	NetAddress             string          `json:"netaddress"`
	RemainingStorage       uint64          `json:"remainingstorage"`
	SectorSize             uint64          `json:"sectorsize"`
	TotalStorage           uint64          `json:"totalstorage"`
	UnlockHash             string          `json:"unlockhash"`
	WindowSize             uint64          `json:"windowsize"`
	Collateral             decimal.Decimal `json:"collateral"`
	MaxCollateral          decimal.Decimal `json:"maxcollateral"`
	ContractPrice          decimal.Decimal `json:"contractprice"`
	DownloadBandwidthPrice decimal.Decimal `json:"downloadbandwidthprice"`
	StoragePrice           decimal.Decimal `json:"storageprice"`
	UploadBandwidthPrice   decimal.Decimal `json:"uploadbandwidthprice"`
	RevisionNumber         uint64          `json:"revisionnumber"`
	Version                string          `json:"version"`
}

// HostInternalSettings are the settings a host operator controls.
type HostInternalSettings struct {
	AcceptingContracts        bool            `json:"acceptingcontracts"`
	MaxDownloadBatchSize      uint64          `json:"maxdownloadbatchsize"`
	MaxDuration               uint64          `json:"maxduration"`
	MaxReviseBatchSize        uint64          `json:"maxrevisebatchsize"`
	NetAddress                string          `json:"netaddress"`
	WindowSize                uint64          `json:"windowsize"`
	Collateral                decimal.Decimal `json:"collateral"`
	CollateralBudget          decimal.Decimal `json:"collateralbudget"`
	MaxCollateral             decimal.Decimal `json:"maxcollateral"`
	MinContractPrice          decimal.Decimal `json:"mincontractprice"`
	MinDownloadBandwidthPrice decimal.Decimal `json:"mindownloadbandwidthprice"`
	MinStoragePrice           decimal.Decimal `json:"minstorageprice"`
	MinUploadBandwidthPrice   decimal.Decimal `json:"minuploadbandwidthprice"`
}

// HostFinancialMetrics tracks the host's revenue and locked collateral.
type HostFinancialMetrics struct {
	ContractCount                     uint64          `json:"contractcount"`
	ContractCompensation              decimal.Decimal `json:"contractcompensation"`
	PotentialContractCompensation     decimal.Decimal `json:"potentialcontractcompensation"`
	LockedStorageCollateral           decimal.Decimal `json:"lockedstoragecollateral"`
	LostRevenue                       decimal.Decimal `json:"lostrevenue"`
	LostStorageCollateral             decimal.Decimal `json:"loststoragecollateral"`
	PotentialStorageRevenue           decimal.Decimal `json:"potentialstoragerevenue"`
	RiskedStorageCollateral           decimal.Decimal `json:"riskedstoragecollateral"`
	StorageRevenue                    decimal.Decimal `json:"storagerevenue"`
	TransactionFeeExpenses            decimal.Decimal `json:"transactionfeeexpenses"`
	DownloadBandwidthRevenue          decimal.Decimal `json:"downloadbandwidthrevenue"`
	PotentialDownloadBandwidthRevenue decimal.Decimal `json:"potentialdownloadbandwidthrevenue"`
	PotentialUploadBandwidthRevenue   decimal.Decimal `json:"potentialuploadbandwidthrevenue"`
	UploadBandwidthRevenue            decimal.Decimal `json:"uploadbandwidthrevenue"`
}

// HostNetworkMetrics counts the RPC calls the host has served.
type HostNetworkMetrics struct {
	DownloadCalls     uint64 `json:"downloadcalls"`
	ErrorCalls        uint64 `json:"errorcalls"`
	FormContractCalls uint64 `json:"formcontractcalls"`
	RenewCalls        uint64 `json:"renewcalls"`
	ReviseCalls       uint64 `json:"revisecalls"`
	SettingsCalls     uint64 `json:"settingscalls"`
	UnrecognizedCalls uint64 `json:"unrecognizedcalls"`
}

// HostInfo is the response body for the [GET] /host endpoint.
type HostInfo struct {
	ConnectabilityStatus string               `json:"connectabilitystatus"`
	WorkingStatus        string               `json:"workingstatus"`
	ExternalSettings     HostExternalSettings `json:"externalsettings"`
	InternalSettings     HostInternalSettings `json:"internalsettings"`
	FinancialMetrics     HostFinancialMetrics `json:"financialmetrics"`
	NetworkMetrics       HostNetworkMetrics   `json:"networkmetrics"`
}

// StorageFolder is a folder tracked by the host's storage manager.
type StorageFolder struct {
	Index             uint16 `json:"index"`
	Path              string `json:"path"`
	Capacity          uint64 `json:"capacity"`
	CapacityRemaining uint64 `json:"capacityremaining"`
	FailedReads       uint64 `json:"failedreads"`
	FailedWrites      uint64 `json:"failedwrites"`
	SuccessfulReads   uint64 `json:"successfulreads"`
	SuccessfulWrites  uint64 `json:"successfulwrites"`
}

// HostScoreEstimate is the response body for the [GET] /host/estimatescore endpoint.
type HostScoreEstimate struct {
	EstimatedScore decimal.Decimal `json:"estimatedscore"`
	ConversionRate float64         `json:"conversionrate"`
}

// SiaPublicKey identifies a host.
type SiaPublicKey struct {
	Algorithm string `json:"algorithm"`
	Key       string `json:"key"`
}

// HostDBEntry is a host as tracked by the renter's host database.
type HostDBEntry struct {
	HostExternalSettings

	FirstSeen       uint64       `json:"firstseen"`
	PublicKey       SiaPublicKey `json:"publickey"`
	PublicKeyString string       `json:"publickeystring"`
	Filtered        bool         `json:"filtered"`
}

// HostScoreBreakdown explains how a host's score was computed.
type HostScoreBreakdown struct {
	Score                      decimal.Decimal `json:"score"`
	ConversionRate             float64         `json:"conversionrate"`
	AgeAdjustment              float64         `json:"ageadjustment"`
	BurnAdjustment             float64         `json:"burnadjustment"`
	CollateralAdjustment       float64         `json:"collateraladjustment"`
	InteractionAdjustment      float64         `json:"interactionadjustment"`
	PriceAdjustment            float64         `json:"pricesmultiplier"`
	StorageRemainingAdjustment float64         `json:"storageremainingadjustment"`
	UptimeAdjustment           float64         `json:"uptimeadjustment"`
	VersionAdjustment          float64         `json:"versionadjustment"`
}

// HostDBHostInfo is the response body for the [GET] /hostdb/hosts/:pubkey endpoint.
type HostDBHostInfo struct {
	Entry          HostDBEntry        `json:"entry"`
	ScoreBreakdown HostScoreBreakdown `json:"scorebreakdown"`
}

// MinerInfo is the response body for the [GET] /miner endpoint.
type MinerInfo struct {
	BlocksMined      int  `json:"blocksmined"`
	CPUHashrate      int  `json:"cpuhashrate"`
	CPUMining        bool `json:"cpumining"`
	StaleBlocksMined int  `json:"staleblocksmined"`
}

// Allowance is the budget a renter spends on contracts during a period.
type Allowance struct {
	Funds       decimal.Decimal `json:"funds"`
	Hosts       uint64          `json:"hosts"`
	Period      uint64          `json:"period"`
	RenewWindow uint64          `json:"renewwindow"`
}

// RenterSettings are the renter's configurable settings.
type RenterSettings struct {
	Allowance Allowance `json:"allowance"`
}

// RenterFinancialMetrics tracks how the allowance has been spent.
type RenterFinancialMetrics struct {
	ContractSpending decimal.Decimal `json:"contractspending"`
	DownloadSpending decimal.Decimal `json:"downloadspending"`
	StorageSpending  decimal.Decimal `json:"storagespending"`
	UploadSpending   decimal.Decimal `json:"uploadspending"`
	Unspent          decimal.Decimal `json:"unspent"`
}

// RenterInfo is the response body for the [GET] /renter endpoint.
type RenterInfo struct {
	Settings         RenterSettings         `json:"settings"`
	FinancialMetrics RenterFinancialMetrics `json:"financialmetrics"`
	CurrentPeriod    uint64                 `json:"currentperiod"`
}

// RenterPrices is the response body for the [GET] /renter/prices endpoint.
type RenterPrices struct {
	DownloadTerabyte     decimal.Decimal `json:"downloadterabyte"`
	FormContracts        decimal.Decimal `json:"formcontracts"`
	StorageTerabyteMonth decimal.Decimal `json:"storageterabytemonth"`
	UploadTerabyte       decimal.Decimal `json:"uploadterabyte"`
}

// RenterContract is a file contract formed by the renter.
type RenterContract struct {
	ID               string          `json:"id"`
	HostPublicKey    SiaPublicKey    `json:"hostpublickey"`
	NetAddress       string          `json:"netaddress"`
	StartHeight      uint64          `json:"startheight"`
	EndHeight        uint64          `json:"endheight"`
	RenterFunds      decimal.Decimal `json:"renterfunds"`
	Size             uint64          `json:"size"`
	DownloadSpending decimal.Decimal `json:"downloadspending"`
	StorageSpending  decimal.Decimal `json:"storagespending"`
	UploadSpending   decimal.Decimal `json:"uploadspending"`
	Fees             decimal.Decimal `json:"fees"`
	TotalCost        decimal.Decimal `json:"totalcost"`
	GoodForUpload    bool            `json:"goodforupload"`
	GoodForRenew     bool            `json:"goodforrenew"`
	LastTransaction  json.RawMessage `json:"lasttransaction"`
}

// DownloadInfo is an entry of the renter's download queue.
type DownloadInfo struct {
	SiaPath         string    `json:"siapath"`
	Destination     string    `json:"destination"`
	DestinationType string    `json:"destinationtype"`
	Filesize        uint64    `json:"filesize"`
	Length          uint64    `json:"length"`
	Offset          uint64    `json:"offset"`
	Received        uint64    `json:"received"`
	StartTime       time.Time `json:"starttime"`
	Error           string    `json:"error"`
}

// FileInfo describes a file tracked by the renter.
type FileInfo struct {
	SiaPath        string  `json:"siapath"`
	LocalPath      string  `json:"localpath"`
	Filesize       uint64  `json:"filesize"`
	Available      bool    `json:"available"`
	Renewing       bool    `json:"renewing"`
	Redundancy     float64 `json:"redundancy"`
	UploadedBytes  uint64  `json:"uploadedbytes"`
	UploadProgress float64 `json:"uploadprogress"`
	Expiration     uint64  `json:"expiration"`
}

// WalletInfo is the response body for the [GET] /wallet endpoint.
type WalletInfo struct {
	Encrypted                   bool            `json:"encrypted"`
	Unlocked                    bool            `json:"unlocked"`
	Rescanning                  bool            `json:"rescanning"`
	ConfirmedSiacoinBalance     decimal.Decimal `json:"confirmedsiacoinbalance"`
	UnconfirmedOutgoingSiacoins decimal.Decimal `json:"unconfirmedoutgoingsiacoins"`
	UnconfirmedIncomingSiacoins decimal.Decimal `json:"unconfirmedincomingsiacoins"`
	SiafundBalance              decimal.Decimal `json:"siafundbalance"`
	SiacoinClaimBalance         decimal.Decimal `json:"siacoinclaimbalance"`
	DustThreshold               decimal.Decimal `json:"dustthreshold"`
}

// WalletSeeds is the response body for the [GET] /wallet/seeds endpoint.
type WalletSeeds struct {
	PrimarySeed        string   `json:"primaryseed"`
	AddressesRemaining int      `json:"addressesremaining"`
	AllSeeds           []string `json:"allseeds"`
}

// ProcessedInput is a transaction input annotated by the wallet.
type ProcessedInput struct {
	ParentID       string          `json:"parentid"`
	FundType       string          `json:"fundtype"`
	WalletAddress  bool            `json:"walletaddress"`
	RelatedAddress string          `json:"relatedaddress"`
	Value          decimal.Decimal `json:"value"`
}

// ProcessedOutput is a transaction output annotated by the wallet.
type ProcessedOutput struct {
	ID             string          `json:"id"`
	FundType       string          `json:"fundtype"`
	MaturityHeight uint64          `json:"maturityheight"`
	WalletAddress  bool            `json:"walletaddress"`
	RelatedAddress string          `json:"relatedaddress"`
	Value          decimal.Decimal `json:"value"`
}

// ProcessedTransaction is a transaction relevant to the wallet. The raw
// transaction is kept undecoded.
type ProcessedTransaction struct {
	Transaction           json.RawMessage   `json:"transaction"`
	TransactionID         string            `json:"transactionid"`
	ConfirmationHeight    uint64            `json:"confirmationheight"`
	ConfirmationTimestamp int64             `json:"confirmationtimestamp"`
	Inputs                []ProcessedInput  `json:"inputs"`
	Outputs               []ProcessedOutput `json:"outputs"`
}

// WalletTransactions is the response body for the [GET] /wallet/transactions endpoint.
type WalletTransactions struct {
	ConfirmedTransactions   []ProcessedTransaction `json:"confirmedtransactions"`
	UnconfirmedTransactions []ProcessedTransaction `json:"unconfirmedtransactions"`
}
