// Package profiles provides the interaction handlers of the viewer's panels
// and the default interaction configuration that binds them.
//
// Ortho panels offer four profiles: view (the default), edit, crop and
// annotate. Lightbox, plot and 3D panels each offer a single view profile.
// Default returns the validated configuration; DefaultBuilder returns a
// builder seeded with it so user overrides can be applied before freezing.
package profiles
