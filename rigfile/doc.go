// SPDX-License-Identifier: MIT

// Package rigfile loads pose-space rigs from YAML documents.
//
// A rig file holds the interpolation parameters, the input/output layout,
// the example samples and optional queries to evaluate:
//
//	params:
//	  kernel: gaussian          # linear | gaussian | thin_plate | multi_quadric |
//	                            # inverse_multi_quadric | wendland_c2
//	  radius: 1.0
//	  regularization: 0.0
//	  output_mode: relative     # absolute | relative
//	twist_axis: x               # x | y | z
//	inputs:
//	  scalars: 1
//	  rotations: 1
//	  rest: [[0, 0, 0, 1]]      # one rest rotation per input rotation
//	outputs: {scalars: 1, rotations: 1}
//	samples:
//	  - name: rest
//	    space: swing_twist      # swing | twist | swing_twist
//	    scalars: [0.0]
//	    rotations: [[0, 0, 0, 1]]
//	    output_scalars: [0.0]
//	    output_rotations: [[0, 0, 0, 1]]
//	queries:
//	  - scalars: [0.5]
//	    rotations: [[0, 0, 0, 1]]
//
// Rotations are unit quaternions written [x, y, z, w]. Input rotations are
// absolute; Samples and Queries express them relative to inputs.rest.
// Unknown keys are rejected.
package rigfile
