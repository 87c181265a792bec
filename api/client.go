package api

// API Client-
//
// Files:
//   config.go    - daemon defaults and route constants
//   errors.go    - DaemonRequestError returned for non-2xx answers
//   payload.go   - request payload fields (form / file)
//   result.go    - response variant (decoded JSON or raw bytes)
//   types.go     - Struct definitions for siad responses
//   base.go      - Core client functionality (client struct, NewClient, request primitives)
//   daemon.go    - /daemon endpoints (version, constants, stop)
//   consensus.go - /consensus endpoints
//   gateway.go   - /gateway endpoints (peers)
//   host.go      - /host endpoints (settings, announce, storage folders)
//   hostdb.go    - /hostdb endpoints
//   miner.go     - /miner endpoints (including the binary block header)
//   renter.go    - /renter endpoints (allowance, prices, contracts, downloads)
//   file.go      - /renter file endpoints (list, upload, download, rename, delete)
//   wallet.go    - /wallet endpoints
//
// Usage:
//   client := api.NewClient()                      // from base.go, talks to http://localhost:9980
//   version, err := client.GetVersion()            // from daemon.go
//   files, err := client.ListFiles()               // from file.go
//   txids, err := client.SendSiacoins(amount, to)  // from wallet.go
