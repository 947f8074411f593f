package services

import "sync"

type Allocator struct {
	mu sync.Mutex // want "sync.Mutex is not allowed in services: rely on the registry uniqueness"
}

var cache sync.RWMutex // want "sync.RWMutex is not allowed in services: rely on the registry uniqueness"

var once sync.Once
