package charting

import "math"

// point é um ponto no espaço dos dados; X é o índice na série recebida
type point struct {
	X float64
	Y float64
}

// decimate reduz a série para threshold pontos com largest-triangle-three-buckets,
// sempre mantendo o primeiro e o último ponto. threshold < 3 ou série menor
// que o limite devolve a própria série.
func decimate(points []point, threshold int) []point {
	if threshold < 3 || len(points) <= threshold {
		return points
	}

	sampled := make([]point, 0, threshold)
	sampled = append(sampled, points[0])

	bucketSize := float64(len(points)-2) / float64(threshold-2)
	selected := 0

	for bucket := 0; bucket < threshold-2; bucket++ {
		start := int(math.Floor(float64(bucket)*bucketSize)) + 1
		end := int(math.Floor(float64(bucket+1)*bucketSize)) + 1

		nextStart := end
		nextEnd := int(math.Floor(float64(bucket+2)*bucketSize)) + 1
		if nextEnd > len(points) {
			nextEnd = len(points)
		}

		var avgX, avgY float64
		for i := nextStart; i < nextEnd; i++ {
			avgX += points[i].X
			avgY += points[i].Y
		}
		count := float64(nextEnd - nextStart)
		avgX /= count
		avgY /= count

		anchor := points[selected]
		maxArea := -1.0
		next := start
		for i := start; i < end; i++ {
			area := math.Abs((anchor.X-avgX)*(points[i].Y-anchor.Y)-(anchor.X-points[i].X)*(avgY-anchor.Y)) / 2
			if area > maxArea {
				maxArea = area
				next = i
			}
		}

		sampled = append(sampled, points[next])
		selected = next
	}

	return append(sampled, points[len(points)-1])
}
