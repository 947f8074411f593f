package other

import "sync"

type Store struct {
	mu sync.RWMutex
}
