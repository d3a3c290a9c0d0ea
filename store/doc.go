// Package store persists counted vocabularies in BadgerDB.
//
// The count, trim, reload protocol often runs its counting pass and its
// reload pass in separate processes. A Store carries the counted
// vocabulary between them:
//
//	st, err := store.Open(store.DefaultConfig("/var/lib/varmodel/domains"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close()
//
//	// counting pass
//	st.SaveSnapshot("tokens", reg)
//
//	// reload pass, possibly in another process
//	reg, err := st.LoadSnapshot("tokens")
//
// A restored registry assigns indices in snapshot order, so indices agree
// with the registry the snapshot was taken from.
package store
