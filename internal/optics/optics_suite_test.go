package optics

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOptics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Optics Suite")
}
