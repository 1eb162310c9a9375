package a64_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestA64(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "A64 Suite")
}
