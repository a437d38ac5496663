package events

const (
	SubjectCatalogStats = "gear.catalog.stats"

	StreamName   = "OUTFITTER_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectRankCompleted(rankingID string) string { return "gear.rank." + rankingID + ".completed" }
func SubjectOutfitAssembled(rankingID string) string {
	return "gear.outfit." + rankingID + ".assembled"
}
func SubjectProductCreated(productID string) string { return "gear.product." + productID + ".created" }
func SubjectProductDeleted(productID string) string { return "gear.product." + productID + ".deleted" }
