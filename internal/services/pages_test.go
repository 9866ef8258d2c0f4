package services_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/taskpool/internal/services"
)

var _ = Describe("Pages", func() {
	var folder string

	BeforeEach(func() {
		folder = GinkgoT().TempDir()
	})

	// Given a folder holding both pages
	// When the service is created
	// Then it should serve their content
	It("should load both pages", func() {
		// Arrange
		Expect(os.WriteFile(filepath.Join(folder, services.HelloPage), []byte("hello"), 0o600)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(folder, services.NotFoundPage), []byte("missing"), 0o600)).To(Succeed())

		// Act
		pages, err := services.NewPagesService(folder)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(string(pages.Hello())).To(Equal("hello"))
		Expect(string(pages.NotFound())).To(Equal("missing"))
	})

	It("should fail when the hello page is missing", func() {
		Expect(os.WriteFile(filepath.Join(folder, services.NotFoundPage), []byte("missing"), 0o600)).To(Succeed())

		_, err := services.NewPagesService(folder)
		Expect(err).To(MatchError(ContainSubstring(services.HelloPage)))
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("should fail when the 404 page is missing", func() {
		Expect(os.WriteFile(filepath.Join(folder, services.HelloPage), []byte("hello"), 0o600)).To(Succeed())

		_, err := services.NewPagesService(folder)
		Expect(err).To(MatchError(ContainSubstring(services.NotFoundPage)))
	})

	It("should load the pages shipped with the repository", func() {
		pages, err := services.NewPagesService(filepath.Join("..", "..", "static"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(pages.Hello())).To(ContainSubstring("Hello!"))
		Expect(string(pages.NotFound())).To(ContainSubstring("Oops!"))
	})
})
