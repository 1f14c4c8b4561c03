package application

import "time"

// Clock abstraction para facilitar testes determinísticos
type Clock interface {
	Now() time.Time
}

// SystemClock implementação padrão, usa time.Now()
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
