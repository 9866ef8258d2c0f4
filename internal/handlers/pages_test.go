package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/taskpool/internal/handlers"
	"github.com/kubev2v/taskpool/internal/services"
)

var _ = Describe("Page handlers", func() {
	var (
		router *gin.Engine
		sleep  time.Duration
	)

	JustBeforeEach(func() {
		folder := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(folder, services.HelloPage), []byte("hello"), 0o600)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(folder, services.NotFoundPage), []byte("missing"), 0o600)).To(Succeed())

		pages, err := services.NewPagesService(folder)
		Expect(err).NotTo(HaveOccurred())

		h := handlers.New(pages, sleep)
		router = gin.New()
		h.RegisterRoutes(router)
		router.NoRoute(h.NotFound)
	})

	BeforeEach(func() {
		sleep = 50 * time.Millisecond
	})

	Context("GET /", func() {
		It("should return the hello page", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("hello"))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("text/html"))
		})
	})

	Context("GET /sleep", func() {
		It("should return the hello page after the delay", func() {
			start := time.Now()
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sleep", nil))

			Expect(time.Since(start)).To(BeNumerically(">=", sleep))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("hello"))
		})

		When("the client goes away", func() {
			BeforeEach(func() {
				sleep = 10 * time.Second
			})

			It("should stop waiting", func() {
				ctx, cancel := context.WithCancel(context.Background())
				req := httptest.NewRequest(http.MethodGet, "/sleep", nil).WithContext(ctx)
				w := httptest.NewRecorder()

				done := make(chan struct{})
				go func() {
					router.ServeHTTP(w, req)
					close(done)
				}()

				cancel()
				Eventually(done, time.Second).Should(BeClosed())
				Expect(w.Body.String()).To(BeEmpty())
			})
		})
	})

	Context("unknown routes", func() {
		DescribeTable("should return the 404 page",
			func(method, path string) {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(method, path, nil))

				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(Equal("missing"))
			},
			Entry("unknown path", http.MethodGet, "/unknown"),
			Entry("nested path", http.MethodGet, "/sleep/more"),
			Entry("other method", http.MethodPost, "/"),
		)
	})
})
