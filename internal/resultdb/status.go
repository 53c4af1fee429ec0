package resultdb

import (
	"fmt"

	"github.com/huangsam/prioritize/schema"
)

// PrintStoreStatus prints result store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Latest Run: %s\n", status.LatestRun.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Weight Rows: %d\n", status.WeightRows)
	fmt.Printf("Ranked Rows: %d\n", status.RankedRows)
}
