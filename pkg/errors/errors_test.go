package errors_test

import (
	"errors"
	"fmt"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/kubev2v/taskpool/pkg/errors"
)

var _ = Describe("Errors", func() {
	Context("ConfigError", func() {
		It("should be detected through wrapping", func() {
			err := fmt.Errorf("failed to create pool: %w", srvErrors.NewInvalidPoolSizeError(0))

			Expect(srvErrors.IsConfigError(err)).To(BeTrue())
			Expect(srvErrors.IsPoolClosedError(err)).To(BeFalse())
			Expect(err.Error()).To(ContainSubstring("invalid pool size 0"))
		})

		It("should omit the field when empty", func() {
			err := srvErrors.NewConfigError("", "bad")
			Expect(err.Error()).To(Equal("configuration error: bad"))
		})
	})

	Context("PoolClosedError", func() {
		It("should name the pool", func() {
			err := srvErrors.NewPoolClosedError("http")

			Expect(srvErrors.IsPoolClosedError(err)).To(BeTrue())
			Expect(err.Error()).To(Equal(`pool "http" is closed`))
		})
	})

	Context("InvalidWorkError", func() {
		It("should be detected", func() {
			Expect(srvErrors.IsInvalidWorkError(srvErrors.NewInvalidWorkError())).To(BeTrue())
			Expect(srvErrors.IsInvalidWorkError(errors.New("other"))).To(BeFalse())
		})
	})

	Context("WorkPanicError", func() {
		It("should unwrap an error panic value", func() {
			err := srvErrors.NewWorkPanicError(3, io.EOF, nil)

			Expect(srvErrors.IsWorkPanicError(err)).To(BeTrue())
			Expect(errors.Is(err, io.EOF)).To(BeTrue())
			Expect(err.Error()).To(Equal("worker 3: work panicked: EOF"))
		})

		It("should not unwrap a non error panic value", func() {
			err := srvErrors.NewWorkPanicError(0, "boom", nil)
			Expect(errors.Unwrap(err)).To(BeNil())
		})
	})
})
