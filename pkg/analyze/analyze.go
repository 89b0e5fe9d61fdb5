// Package analyze orchestrates one end-to-end run: resolving an image
// reference to a filesystem source, ingesting its layers, scoring its
// efficiency, and printing the result the caller asked for.
package analyze

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sbchaos/cake/pkg/analysis"
	"github.com/sbchaos/cake/pkg/dockercli"
	"github.com/sbchaos/cake/pkg/image"
	"github.com/sbchaos/cake/pkg/ofs"
	"github.com/sbchaos/cake/pkg/packages"
)

// Options selects which view of the analysis to print.
type Options struct {
	ShowPackages bool
	ShowTree     bool
}

// Run resolves ref to an image, produces its analysis report (from cache
// or from scratch), and prints the view named by opts.
func Run(log *logrus.Entry, cli *dockercli.CLI, ref string, opts Options) error {
	img, err := resolveImage(log, cli, ref)
	if err != nil {
		return err
	}

	report, err := generateReport(log, cli, img)
	if err != nil {
		return err
	}

	switch {
	case opts.ShowTree:
		report.Ofs.ShowAsTree()
	case opts.ShowPackages:
		report.ShowPackages()
	default:
		report.ShowReport()
	}
	return nil
}

// resolveImage finds the cheapest source for ref: a cached artifact
// keyed on ref itself, then a live docker inspect of ref, then a cached
// artifact keyed on the id that "images <ref> -q" resolves, then a live
// docker inspect of that id, before giving up.
func resolveImage(log *logrus.Entry, cli *dockercli.CLI, ref string) (*image.Image, error) {
	img := image.NewImage(ref, ref)
	img.ResolveSource()
	if img.Source != image.SourceNone {
		return img, nil
	}

	if _, err := cli.Inspect(ref); err == nil {
		log.Tracef("docker inspect succeeded for %s", ref)
		img.Source = image.SourceDocker
		return img, nil
	}

	id, err := cli.ImageID(ref)
	if err == nil {
		resolved := image.NewImage(ref, id)
		resolved.ResolveSource()
		if resolved.Source != image.SourceNone {
			return resolved, nil
		}
		if _, err := cli.Inspect(id); err == nil {
			resolved.Source = image.SourceDocker
			return resolved, nil
		}
	}

	return nil, &image.ErrNoSource{Name: ref}
}

// generateReport produces img's analysis report, following the cache
// precedence encoded in img.Source. A malformed cached report or tree is
// treated as absent and ingestion falls through to the next option,
// rather than failing the whole run.
func generateReport(log *logrus.Entry, cli *dockercli.CLI, img *image.Image) (*analysis.Report, error) {
	switch img.Source {
	case image.SourceReport:
		if report, err := analysis.LoadReport(img); err == nil {
			return report, nil
		}
		log.Debug("cached report malformed or unreadable, falling through to tree")
		fallthrough
	case image.SourceTree:
		if overlay, err := ofs.CreateFsFromJSON(img.ImageID); err == nil {
			return buildReport(overlay, img, cli, log)
		}
		log.Debug("cached tree malformed or unreadable, falling through to dir")
		fallthrough
	case image.SourceDir:
		return ingestAndReport(log, cli, img)
	case image.SourceTar:
		if err := image.ExtractImageTar(img); err != nil {
			return nil, fmt.Errorf("extract image tar: %w", err)
		}
		return ingestAndReport(log, cli, img)
	case image.SourceDocker:
		log.Infof("fetching image docker://%s, this can take a while for larger images", img.Name)
		if err := cli.Save(img.ImageID); err != nil {
			return nil, fmt.Errorf("fetch image: %w", err)
		}
		if err := image.ExtractImageTar(img); err != nil {
			return nil, fmt.Errorf("extract image tar: %w", err)
		}
		return ingestAndReport(log, cli, img)
	default:
		return nil, &image.ErrNoSource{Name: img.Name}
	}
}

// ingestAndReport reads img's manifest and every layer it names into a
// fresh overlay filesystem, then scores it.
func ingestAndReport(log *logrus.Entry, cli *dockercli.CLI, img *image.Image) (*analysis.Report, error) {
	manifest, err := image.ManifestForImage(img)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	log.Tracef("manifest: %+v", manifest)

	if len(manifest.Layers) == 0 {
		return nil, fmt.Errorf("manifest for %s has no layers", img.Name)
	}

	overlay := ofs.New()
	for i, layerPath := range manifest.Layers {
		path := img.DirPath() + "/" + layerPath
		layerID := fmt.Sprintf("layer%d", i)
		log.Tracef("ingesting layer %s from %s", layerID, path)

		if err := image.ReadTarLayer(overlay, path, layerID); err != nil {
			return nil, fmt.Errorf("read layer %s: %w", layerID, err)
		}
		overlay.AddLayer(ofs.NewLayer(layerID, path))
	}

	overlay.UpdateSizes()
	if err := overlay.SaveTreeToJSON(img.ImageID); err != nil {
		log.Warnf("could not cache overlay tree: %v", err)
	}

	return buildReport(overlay, img, cli, log)
}

// buildReport runs every package manager against overlay and scores the
// result, saving the report alongside the image's other cached artifacts.
func buildReport(overlay *ofs.OverlayFs, img *image.Image, cli *dockercli.CLI, log *logrus.Entry) (*analysis.Report, error) {
	managers := []packages.Manager{
		packages.NewAlpine(overlay),
		packages.NewRPM(overlay, cli, img.ImageID),
		packages.NewDebian(overlay),
		packages.NewArchive(overlay),
	}

	reports := make([]analysis.ManagerReport, 0, len(managers))
	for _, m := range managers {
		reports = append(reports, analysis.NewManagerReport(m))
	}

	report := analysis.CreateReport(overlay, img, reports)
	if err := report.SaveAsJSON(); err != nil {
		log.Warnf("could not cache analysis report: %v", err)
	}
	return report, nil
}
