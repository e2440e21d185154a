package bst

import "github.com/cloudfoundry/gosigar"
import s "github.com/bnclabs/gosettings"

// Defaultsettings for bst instance.
//
// "iterpool.size" (int64, default: 100)
//	Maximum number of walk stacks kept for reuse by Traverse,
//	Values, All and other tree walks.
//
// "depth.warn" (int64, default: 1024)
//	Log a warning the first time an entry is inserted deeper than
//	this. Sorted input degrades the tree into a list and is the
//	usual cause.
//
// "memcapacity" (int64, default: free RAM)
//	Memory expected to be available for tree nodes. Validate()
//	logs a warning when the estimated node memory exceeds this.
//
// "render.separator" (string, default: ", ")
//	Appended after every value by Render() and Prettyprint().
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	setts := s.Settings{
		"iterpool.size":    int64(100),
		"depth.warn":       int64(1024),
		"memcapacity":      int64(free),
		"render.separator": ", ",
	}
	return setts
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
