package internal

import (
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
)

// BoxListPool is a pool of reusable BBox slices used by scene broad phases.
var BoxListPool = sync.Pool{
	New: func() interface{} {
		s := make([]cube.BBox, 0, 32)
		return &s
	},
}

// GetBoxList retrieves an empty BBox slice from the pool.
func GetBoxList() *[]cube.BBox {
	list := BoxListPool.Get().(*[]cube.BBox)
	*list = (*list)[:0]
	return list
}

// PutBoxList returns a BBox slice to the pool.
func PutBoxList(list *[]cube.BBox) {
	if list != nil {
		*list = (*list)[:0]
		BoxListPool.Put(list)
	}
}
