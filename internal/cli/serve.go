/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/resultcode/httpx"
	clierrors "dirpx.dev/resultcode/internal/errors"
	"dirpx.dev/resultcode/taxonomy"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		listen   string
		maxCodes int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve translations over HTTP",
		Long: `Serve translations over HTTP until interrupted.

  GET /v1/translate?code=0x8004131F&code=267009
  GET /v1/taxonomy`,
		Args: exactArgs(0, "arguments"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("listen") {
				a.cfg.Listen = listen
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", a.cfg.Listen)
			if err != nil {
				return clierrors.WrapWithMessage(err, clierrors.Runtime, "listen", "pick a free address with --listen")
			}
			return a.serve(ctx, ln, maxCodes)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config)")
	cmd.Flags().IntVar(&maxCodes, "max-codes", httpx.DefaultMaxCodes, "maximum codes per request")
	return cmd
}

// serve runs the HTTP handler on ln until ctx is done, then shuts down
// gracefully.
func (a *app) serve(ctx context.Context, ln net.Listener, maxCodes int) error {
	srv := &http.Server{
		Handler: httpx.NewHandler(a.translator,
			httpx.WithLogger(a.logger),
			httpx.WithTaxonomy(taxonomy.Default()),
			httpx.WithMaxCodes(maxCodes),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	a.logger.Info("serving", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		return clierrors.Wrap(err, clierrors.Runtime)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "shutdown")
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return clierrors.Wrap(err, clierrors.Runtime)
	}
	a.logger.Info("server stopped")
	return nil
}
