package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/bodega-wms/internal/app"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/importer"
	"github.com/jhoicas/bodega-wms/internal/application/usecase"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/plugins"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/postgres"
	"github.com/jhoicas/bodega-wms/pkg/jwt"
)

func newPluginsCmd() *cobra.Command {
	var (
		asJSON  bool
		has     string
		formats string
	)

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "Listar los plugins de importación disponibles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := importer.NewRegistry(plugins.Builtin()...)
			if err != nil {
				return err
			}
			uc := usecase.NewPluginUseCase(reg)
			switch {
			case has != "":
				ok := uc.Has(has)
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				if !ok {
					return withCode(exitFailure, fmt.Errorf("plugin %q no registrado", has))
				}
				return nil
			case formats != "":
				out, err := uc.SupportedFormats(formats)
				if err != nil {
					return withCode(exitUsage, err)
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), out)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out.Formats, ","))
				return nil
			}
			list := uc.List()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), list)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tVERSIÓN\tFORMATOS\tDESCRIPCIÓN")
			for _, m := range list.Items {
				fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", m.ID, m.Version, m.SupportedFormats, m.Description)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Salida JSON")
	cmd.Flags().StringVar(&has, "has", "", "Indica si el plugin existe (código 1 si no)")
	cmd.Flags().StringVar(&formats, "formats", "", "Formatos de archivo aceptados por el plugin")
	return cmd
}

func newWarehousesCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warehouses",
		Short: "Administrar bodegas",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar bodegas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd.Context(), root, false, func(_ *env, c *app.Container) error {
				out, err := c.WarehouseUC.List(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}

	var in dto.CreateWarehouseRequest
	var capacity string
	create := &cobra.Command{
		Use:   "create",
		Short: "Crear una bodega",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if capacity != "" {
				d, err := decimal.NewFromString(capacity)
				if err != nil {
					return withCode(exitUsage, fmt.Errorf("--capacity inválido: %w", err))
				}
				in.Capacity = d
			}
			return withContainer(cmd.Context(), root, true, func(_ *env, c *app.Container) error {
				out, err := c.WarehouseUC.Create(cmd.Context(), in)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
	create.Flags().StringVar(&in.ID, "id", "", "ID (default: UUID generado)")
	create.Flags().StringVar(&in.Code, "code", "", "Código único (requerido)")
	create.Flags().StringVar(&in.Name, "name", "", "Nombre (requerido)")
	create.Flags().StringVar(&in.Location, "location", "", "Ubicación")
	create.Flags().StringVar(&capacity, "capacity", "", "Capacidad")
	_ = create.MarkFlagRequired("code")
	_ = create.MarkFlagRequired("name")

	exists := &cobra.Command{
		Use:   "exists <id>",
		Short: "Indicar si la bodega existe (código de salida 1 si no)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), root, false, func(_ *env, c *app.Container) error {
				ok, err := c.WarehouseUC.Exists(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				if !ok {
					return fmt.Errorf("bodega %q no existe", args[0])
				}
				return nil
			})
		},
	}

	cmd.AddCommand(list, create, exists)
	return cmd
}

// newTokenCmd emite un token de sesión para la API local.
func newTokenCmd() *cobra.Command {
	var (
		scope   string
		subject string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emitir un token de sesión para la API local",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(&rootOptions{})
			if err != nil {
				return err
			}
			if !e.cfg.JWT.Enabled() {
				return withCode(exitUsage, fmt.Errorf("JWT_SECRET no configurado"))
			}
			tok, err := jwt.Generate(e.cfg.JWT.Secret, subject, scope, e.cfg.JWT.Issuer, e.cfg.JWT.Expiration)
			if err != nil {
				return withCode(exitUsage, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", jwt.ScopeRead, "Alcance: read | import")
	cmd.Flags().StringVar(&subject, "subject", "desktop-shell", "Sujeto del token")
	return cmd
}

func newMigrateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplicar las migraciones de esquema embebidas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(root)
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(cmd.Context(), e.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := postgres.Migrate(cmd.Context(), pool, e.log.Component("migrate")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migraciones aplicadas")
			return nil
		},
	}
}
