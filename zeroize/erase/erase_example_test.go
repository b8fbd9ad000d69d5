package erase_test

import (
	"fmt"

	"github.com/LerianStudio/lib-zeroize/zeroize/erase"
)

func ExampleStruct() {
	type login struct {
		User     string `erase:"skip"`
		Password []byte
		Attempts int
	}

	l := &login{User: "alice", Password: []byte("hunter2"), Attempts: 3}

	if err := erase.Struct(l); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(l.User)
	fmt.Println(l.Password)
	fmt.Println(l.Attempts)

	// Output:
	// alice
	// [0 0 0 0 0 0 0]
	// 0
}

func ExampleBuffer() {
	b := erase.NewBufferFrom([]byte("api-token"))

	b.Erase()

	fmt.Println(b.Len(), b.Cap() > 0)

	// Output:
	// 0 true
}

func ExampleSensitive() {
	type config struct {
		Endpoint string
		APIKey   []byte
	}

	cfg := &config{Endpoint: "https://api.example.com", APIKey: []byte("ak-123")}

	if err := erase.Sensitive(cfg); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cfg.Endpoint)
	fmt.Println(cfg.APIKey)

	// Output:
	// https://api.example.com
	// [0 0 0 0 0 0]
}
