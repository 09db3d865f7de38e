package server_test

import (
	"net/http"

	"fastauth/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("should report ErrServerClosed after shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")

		errChan := srv.Run()
		Eventually(func() error { return srv.Shutdown() }).Should(Succeed())
		Eventually(errChan).Should(Receive(Equal(http.ErrServerClosed)))
	})

	It("should report a listen error", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "not-a-port")

		errChan := srv.Run()
		Eventually(errChan).Should(Receive(HaveOccurred()))
	})
})
