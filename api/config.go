package api

// daemon connection defaults
const (
	DefaultAddress    = "http://localhost"
	DefaultPort       = 9980
	DefaultUserAgent  = "Sia-Agent"
	DefaultDictionary = "english"
)

// daemon routes
const (
	// daemon
	RouteDaemonConstants = "/daemon/constants"
	RouteDaemonStop      = "/daemon/stop"
	RouteDaemonVersion   = "/daemon/version"

	// consensus
	RouteConsensus         = "/consensus"
	RouteConsensusValidate = "/consensus/validate/transactionset"

	// gateway
	RouteGateway           = "/gateway"
	RouteGatewayConnect    = "/gateway/connect/"
	RouteGatewayDisconnect = "/gateway/disconnect/"

	// host
	RouteHost              = "/host"
	RouteHostAnnounce      = "/host/announce"
	RouteHostStorage       = "/host/storage"
	RouteHostStorageAdd    = "/host/storage/folders/add"
	RouteHostStorageRemove = "/host/storage/folders/remove"
	RouteHostStorageResize = "/host/storage/folder/resize"
	RouteHostStorageSector = "/host/storage/sector/"
	RouteHostEstimateScore = "/host/estimatescore"

	// hostdb
	RouteHostDBAll    = "/hostdb/all"
	RouteHostDBActive = "/hostdb/active"
	RouteHostDBHosts  = "/hostdb/hosts/"

	// miner
	RouteMiner       = "/miner"
	RouteMinerStart  = "/miner/start"
	RouteMinerStop   = "/miner/stop"
	RouteMinerHeader = "/miner/header"

	// renter
	RouteRenter          = "/renter"
	RouteRenterPrices    = "/renter/prices"
	RouteRenterContracts = "/renter/contracts"
	RouteRenterDownloads = "/renter/downloads"

	// renter files
	RouteRenterFiles    = "/renter/files"
	RouteRenterDelete   = "/renter/delete/"
	RouteRenterDownload = "/renter/download/"
	RouteRenterRename   = "/renter/rename/"
	RouteRenterUpload   = "/renter/upload/"

	// wallet
	RouteWallet               = "/wallet"
	RouteWallet033x           = "/wallet/033x"
	RouteWalletAddress        = "/wallet/address"
	RouteWalletAddresses      = "/wallet/addresses"
	RouteWalletBackup         = "/wallet/backup"
	RouteWalletInit           = "/wallet/init"
	RouteWalletSeed           = "/wallet/seed"
	RouteWalletSeeds          = "/wallet/seeds"
	RouteWalletSiacoins       = "/wallet/siacoins"
	RouteWalletSiafunds       = "/wallet/siafunds"
	RouteWalletSiagKey        = "/wallet/siagkey"
	RouteWalletLock           = "/wallet/lock"
	RouteWalletUnlock         = "/wallet/unlock"
	RouteWalletTransaction    = "/wallet/transaction/"
	RouteWalletTransactions   = "/wallet/transactions"
	RouteWalletVerifyAddress  = "/wallet/verify/address/"
	RouteWalletChangePassword = "/wallet/changepassword"
)
