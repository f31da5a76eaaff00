// Package models defines the record envelope and the named collections that
// partition the local store.
package models

// Collection names a partition of records of one entity type.
type Collection string

const (
	CollectionUsers        Collection = "users"
	CollectionCustomers    Collection = "customers"
	CollectionFamilies     Collection = "families"
	CollectionOrders       Collection = "orders"
	CollectionInvoices     Collection = "invoices"
	CollectionPayments     Collection = "payments"
	CollectionMeasurements Collection = "measurements"
	CollectionTemplates    Collection = "templates"
)

// collectionAliases maps backend key-naming variants to canonical collection
// names. The backend is known to emit "familys" for the families collection.
var collectionAliases = map[string]Collection{
	"familys": CollectionFamilies,
}

var allCollections = []Collection{
	CollectionUsers,
	CollectionCustomers,
	CollectionFamilies,
	CollectionOrders,
	CollectionInvoices,
	CollectionPayments,
	CollectionMeasurements,
	CollectionTemplates,
}

// Collections returns every known collection, users included.
func Collections() []Collection {
	out := make([]Collection, len(allCollections))
	copy(out, allCollections)
	return out
}

// BusinessCollections returns every collection except users. Pull emptiness
// checks and the seed loader operate on this subset: a response carrying only
// user/session info must not count as "data".
func BusinessCollections() []Collection {
	out := make([]Collection, 0, len(allCollections)-1)
	for _, c := range allCollections {
		if c != CollectionUsers {
			out = append(out, c)
		}
	}
	return out
}

// ValidCollection reports whether name is one of the known collections.
func ValidCollection(c Collection) bool {
	for _, known := range allCollections {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeKey resolves a backend response key to a canonical collection name.
// Unknown keys are returned as-is with ok=false.
func NormalizeKey(key string) (Collection, bool) {
	if alias, ok := collectionAliases[key]; ok {
		return alias, true
	}
	c := Collection(key)
	return c, ValidCollection(c)
}
